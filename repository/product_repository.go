package repository

import (
	"beautygpt-api/models"
)

// ProductRepository is the in-memory, read-only product catalog.
// It is filled once at startup and shared by every request handler.
type ProductRepository struct {
	products []models.Product
	byID     map[int]int
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

// NewProductRepository creates a ProductRepository over a private copy of products
func NewProductRepository(products []models.Product) *ProductRepository {
	owned := make([]models.Product, len(products))
	copy(owned, products)

	byID := make(map[int]int, len(owned))
	for i, p := range owned {
		if _, exists := byID[p.ID]; !exists {
			byID[p.ID] = i
		}
	}

	return &ProductRepository{
		products: owned,
		byID:     byID,
	}
}

// All returns the whole catalog in catalog order
func (r *ProductRepository) All() []models.Product {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

// GetByID returns the product with the given id
func (r *ProductRepository) GetByID(id int) (models.Product, bool) {
	i, ok := r.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return r.products[i], true
}

// FilterByCategory returns products whose category equals category exactly
func (r *ProductRepository) FilterByCategory(category string) []models.Product {
	return r.filter(func(p models.Product) bool {
		return p.Category == category
	})
}

// FilterBySkinType returns products whose skin types contain skinType
func (r *ProductRepository) FilterBySkinType(skinType string) []models.Product {
	return r.filter(func(p models.Product) bool {
		return p.HasSkinType(skinType)
	})
}

func (r *ProductRepository) filter(keep func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range r.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
