package router

import (
	"encoding/json"
	"net/http"

	"beautygpt-api/app/controller"
	"beautygpt-api/app/middleware"
	"beautygpt-api/models"
)

// Controllers groups the handlers mounted by SetupRoutes
type Controllers struct {
	Chat    *controller.ChatController
	Product *controller.ProductController
	Catalog *controller.CatalogController
}

// statusHandler handles GET /
func statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.StatusResponse{Status: "ok", Message: "BeautyGPT API"})
}

// SetupRoutes registers every route on mux
func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Liveness
	mux.HandleFunc("GET /{$}", statusHandler)

	// Chat
	mux.HandleFunc("POST /chat", controllers.Chat.Chat)

	// Catalog
	mux.HandleFunc("GET /products", controllers.Product.ListProducts)
	mux.HandleFunc("GET /products/category/{category}", controllers.Product.ProductsByCategory)
	mux.HandleFunc("GET /products/skin-type/{skin_type}", controllers.Product.ProductsBySkinType)
	mux.HandleFunc("GET /images/products/{id}", controllers.Product.ProductImage)

	// Printable catalog (html or pdf)
	mux.HandleFunc("GET /catalog", controllers.Catalog.GenerateCatalog)
}

// NewHandler builds the complete HTTP handler: routes behind CORS, recovery and request logging
func NewHandler(controllers *Controllers) http.Handler {
	mux := http.NewServeMux()
	SetupRoutes(mux, controllers)

	return middleware.RequestLogger(middleware.Recover(middleware.CORS(mux)))
}
