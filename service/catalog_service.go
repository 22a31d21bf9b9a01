package service

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"

	"beautygpt-api/models"
	"beautygpt-api/repository"
	"beautygpt-api/utils"
)

//go:embed templates/catalog.html
var templateFS embed.FS

const catalogTitle = "BeautyGPT · Catalogo prodotti"

// CatalogFilter narrows the printable catalog; empty fields match everything
type CatalogFilter struct {
	Category string
	SkinType string
}

// String describes the active filter for the catalog header
func (f CatalogFilter) String() string {
	var parts []string
	if f.Category != "" {
		parts = append(parts, "categoria: "+f.Category)
	}
	if f.SkinType != "" {
		parts = append(parts, "tipo di pelle: "+f.SkinType)
	}
	return strings.Join(parts, ", ")
}

// CatalogService renders the product catalog as printable HTML or PDF
type CatalogService struct {
	repository repository.ProductRepositoryInterface
	tmpl       *template.Template
	chromePath string
	now        func() time.Time
}

// NewCatalogService creates a new CatalogService.
// chromePath may be empty, in which case Chrome is looked up in common locations.
func NewCatalogService(repo repository.ProductRepositoryInterface, chromePath string) (*CatalogService, error) {
	tmpl, err := template.New("catalog.html").
		Funcs(template.FuncMap{
			"join": func(values []string) string { return strings.Join(values, ", ") },
		}).
		ParseFS(templateFS, "templates/catalog.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	return &CatalogService{
		repository: repo,
		tmpl:       tmpl,
		chromePath: chromePath,
		now:        time.Now,
	}, nil
}

// Products returns the catalog entries matching filter, in catalog order
func (s *CatalogService) Products(filter CatalogFilter) []models.Product {
	var products []models.Product
	if filter.Category != "" {
		products = s.repository.FilterByCategory(filter.Category)
	} else {
		products = s.repository.All()
	}

	if filter.SkinType == "" {
		return products
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.HasSkinType(filter.SkinType) {
			out = append(out, p)
		}
	}
	return out
}

// RenderCatalogHTML renders the catalog template for the filtered products
func (s *CatalogService) RenderCatalogHTML(filter CatalogFilter) (string, error) {
	products := s.Products(filter)

	entries := make([]models.CatalogEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, models.CatalogEntry{
			Product:    p,
			PriceLabel: utils.FormatEUR(p.Price),
		})
	}

	data := models.CatalogPage{
		Title:       catalogTitle,
		GeneratedAt: s.now().Format("02/01/2006"),
		Filter:      filter.String(),
		Products:    entries,
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// detectChromePath returns the configured Chrome path or the first one found on disk
func (s *CatalogService) detectChromePath() string {
	if s.chromePath != "" {
		if _, err := os.Stat(s.chromePath); err == nil {
			return s.chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// GeneratePDF prints the rendered catalog to an A4 PDF with headless Chrome
func (s *CatalogService) GeneratePDF(ctx context.Context, filter CatalogFilter) ([]byte, error) {
	logger := zerolog.Ctx(ctx)

	htmlContent, err := s.RenderCatalogHTML(filter)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := s.detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	} else {
		logger.Warn().Msg("⚠️  Chrome not found, letting chromedp auto-detect")
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm = 8.27" x 11.69"
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	logger.Info().Int("bytes", len(pdfBuf)).Str("filter", filter.String()).Msg("✓ Catalog PDF generated")
	return pdfBuf, nil
}
