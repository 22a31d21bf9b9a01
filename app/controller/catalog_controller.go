package controller

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"beautygpt-api/service"
)

// CatalogServiceInterface defines the printable catalog operations
type CatalogServiceInterface interface {
	RenderCatalogHTML(filter service.CatalogFilter) (string, error)
	GeneratePDF(ctx context.Context, filter service.CatalogFilter) ([]byte, error)
}

// CatalogController handles HTTP requests for the printable catalog
type CatalogController struct {
	catalogService CatalogServiceInterface
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// validFormats is a map of valid format values
var validFormats = map[string]bool{
	"html": true,
	"pdf":  true,
}

// GenerateCatalog handles GET /catalog?format=html|pdf&category=serum&skin_type=dry
func (c *CatalogController) GenerateCatalog(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	query := r.URL.Query()
	format := strings.ToLower(strings.TrimSpace(query.Get("format")))
	if format == "" {
		format = "html"
	}
	if !validFormats[format] {
		logger.Warn().Str("format", format).Msg("❌ GenerateCatalog: Invalid format")
		writeError(w, r, http.StatusBadRequest, "Invalid format. Valid formats: html, pdf")
		return
	}

	filter := service.CatalogFilter{
		Category: query.Get("category"),
		SkinType: query.Get("skin_type"),
	}

	switch format {
	case "pdf":
		pdf, err := c.catalogService.GeneratePDF(r.Context(), filter)
		if err != nil {
			logger.Error().Err(err).Msg("❌ GenerateCatalog: Error generating PDF")
			writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("Failed to generate PDF: %v", err))
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="catalogo-beautygpt.pdf"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(pdf)
	default:
		html, err := c.catalogService.RenderCatalogHTML(filter)
		if err != nil {
			logger.Error().Err(err).Msg("❌ GenerateCatalog: Error rendering HTML")
			writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("Failed to render catalog: %v", err))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(html))
	}
}
