package controller

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"beautygpt-api/models"
	"beautygpt-api/repository"
	"beautygpt-api/service"
)

// ImageServiceInterface defines the product image operations used by ProductController
type ImageServiceInterface interface {
	ProductImage(ctx context.Context, productID int, size string) ([]byte, error)
}

// ProductController handles HTTP requests for the product catalog
type ProductController struct {
	repository repository.ProductRepositoryInterface
	images     ImageServiceInterface
}

// NewProductController creates a new ProductController
func NewProductController(repo repository.ProductRepositoryInterface, images ImageServiceInterface) *ProductController {
	return &ProductController{
		repository: repo,
		images:     images,
	}
}

// ListProducts handles GET /products
func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.ProductListResponse{Products: c.repository.All()})
}

// ProductsByCategory handles GET /products/category/{category}
// Unknown categories yield an empty list.
func (c *ProductController) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	products := c.repository.FilterByCategory(category)

	zerolog.Ctx(r.Context()).Debug().Str("category", category).Int("products", len(products)).Msg("🔍 ProductsByCategory")
	writeJSON(w, r, http.StatusOK, models.ProductListResponse{Products: products})
}

// ProductsBySkinType handles GET /products/skin-type/{skin_type}
func (c *ProductController) ProductsBySkinType(w http.ResponseWriter, r *http.Request) {
	skinType := r.PathValue("skin_type")
	products := c.repository.FilterBySkinType(skinType)

	zerolog.Ctx(r.Context()).Debug().Str("skin_type", skinType).Int("products", len(products)).Msg("🔍 ProductsBySkinType")
	writeJSON(w, r, http.StatusOK, models.ProductListResponse{Products: products})
}

// ProductImage handles GET /images/products/{id}?size=thumb|medium
func (c *ProductController) ProductImage(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, "Product not found")
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "medium"
	}

	data, err := c.images.ProductImage(r.Context(), id, size)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrUnknownImageSize):
		writeError(w, r, http.StatusBadRequest, "Invalid size. Valid sizes: thumb, medium")
		return
	case errors.Is(err, service.ErrProductNotFound), errors.Is(err, service.ErrNoProductImage):
		writeError(w, r, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, service.ErrImageFetch):
		logger.Warn().Err(err).Int("product_id", id).Msg("⚠️  ProductImage: upstream image unavailable")
		writeError(w, r, http.StatusBadGateway, err.Error())
		return
	default:
		logger.Error().Err(err).Int("product_id", id).Msg("❌ ProductImage: failed")
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Error().Err(err).Msg("❌ ProductImage: Error writing response")
	}
}
