package models

// Product represents a single entry of the beauty product catalog
type Product struct {
	ID             int      `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Brand          string   `json:"brand" yaml:"brand"`
	Price          float64  `json:"price" yaml:"price"`
	Category       string   `json:"category" yaml:"category"`
	SkinTypes      []string `json:"skin_types" yaml:"skin_types"`
	AgeRange       []string `json:"age_range" yaml:"age_range"`
	Benefits       []string `json:"benefits" yaml:"benefits"`
	KeyIngredients []string `json:"key_ingredients" yaml:"key_ingredients"`
	AmazonURL      string   `json:"amazon_url" yaml:"amazon_url"`
	ImageURL       string   `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// HasSkinType reports whether skinType is one of the product's skin types (exact match)
func (p Product) HasSkinType(skinType string) bool {
	for _, st := range p.SkinTypes {
		if st == skinType {
			return true
		}
	}
	return false
}

// ProductCatalogFile is the on-disk layout of the catalog document
// Example: {"products": [{"id": 1, "name": "HydraGlow Serum", ...}]}
// Products is nil when the key is missing and empty for an empty list.
type ProductCatalogFile struct {
	Products *[]Product `json:"products" yaml:"products"`
}

// ProductListResponse wraps product lists returned by the API
type ProductListResponse struct {
	Products []Product `json:"products"`
}

// CatalogPage represents the data structure passed to the printable catalog template
type CatalogPage struct {
	Title       string
	GeneratedAt string
	Filter      string
	Products    []CatalogEntry
}

// CatalogEntry is a product prepared for the printable catalog
type CatalogEntry struct {
	Product
	PriceLabel string
}
