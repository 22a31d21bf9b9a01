package repository

import (
	"beautygpt-api/models"
)

// ProductRepositoryInterface defines the contract for read-only catalog access
type ProductRepositoryInterface interface {
	All() []models.Product
	GetByID(id int) (models.Product, bool)
	FilterByCategory(category string) []models.Product
	FilterBySkinType(skinType string) []models.Product
}
