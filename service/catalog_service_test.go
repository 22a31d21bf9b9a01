package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautygpt-api/models"
	"beautygpt-api/repository"
)

func newTestCatalogService(t *testing.T, products []models.Product) *CatalogService {
	t.Helper()

	svc, err := NewCatalogService(repository.NewProductRepository(products), "")
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestCatalogServiceProductsFilter(t *testing.T) {
	svc := newTestCatalogService(t, testProducts())

	tests := []struct {
		name   string
		filter CatalogFilter
		want   []int
	}{
		{name: "no filter", filter: CatalogFilter{}, want: []int{1, 2, 3}},
		{name: "category", filter: CatalogFilter{Category: "cream"}, want: []int{3}},
		{name: "skin type", filter: CatalogFilter{SkinType: "dry"}, want: []int{1, 3}},
		{name: "both", filter: CatalogFilter{Category: "serum", SkinType: "dry"}, want: []int{1}},
		{name: "no match", filter: CatalogFilter{Category: "serum", SkinType: "oily"}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, productIDs(svc.Products(tt.filter)))
		})
	}
}

func TestRenderCatalogHTML(t *testing.T) {
	svc := newTestCatalogService(t, testProducts())

	html, err := svc.RenderCatalogHTML(CatalogFilter{SkinType: "dry"})
	require.NoError(t, err)

	assert.Contains(t, html, "Generato il 08/03/2026")
	assert.Contains(t, html, "tipo di pelle: dry")
	assert.Contains(t, html, "2 prodotti")
	assert.Contains(t, html, "HydraGlow Serum")
	assert.Contains(t, html, "€ 24,90")
	assert.Contains(t, html, "Night Repair Cream")
	assert.Contains(t, html, "retinolo, peptidi")
	assert.NotContains(t, html, "Gentle Foam Cleanser")

	// serum comes first
	assert.Less(t, strings.Index(html, "HydraGlow Serum"), strings.Index(html, "Night Repair Cream"))
}

func TestRenderCatalogHTMLEscapes(t *testing.T) {
	svc := newTestCatalogService(t, []models.Product{
		{ID: 9, Name: "<script>alert(1)</script>", Brand: "Evil & Co", Category: "serum"},
	})

	html, err := svc.RenderCatalogHTML(CatalogFilter{})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "Evil &amp; Co")
}

func TestRenderCatalogHTMLEmpty(t *testing.T) {
	svc := newTestCatalogService(t, testProducts())

	html, err := svc.RenderCatalogHTML(CatalogFilter{Category: "toner"})
	require.NoError(t, err)
	assert.Contains(t, html, "Nessun prodotto trovato.")
	assert.Contains(t, html, "0 prodotti")
}

func TestCatalogFilterString(t *testing.T) {
	assert.Equal(t, "", CatalogFilter{}.String())
	assert.Equal(t, "categoria: serum", CatalogFilter{Category: "serum"}.String())
	assert.Equal(t, "categoria: serum, tipo di pelle: dry", CatalogFilter{Category: "serum", SkinType: "dry"}.String())
}
