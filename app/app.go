package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"beautygpt-api/app/controller"
	"beautygpt-api/app/router"
	"beautygpt-api/config"
	"beautygpt-api/db"
	"beautygpt-api/models"
	"beautygpt-api/repository"
	"beautygpt-api/service"
)

// Initialize loads the catalog, assembles the system prompt and wires the HTTP handler.
// Any error here means the process must not start.
func Initialize(ctx context.Context, cfg config.Config) (http.Handler, error) {
	products, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load product catalog: %w", err)
	}

	// Initialize repository
	productRepo := repository.NewProductRepository(products)

	// The system prompt is computed once and shared by every request
	systemPrompt := service.BuildSystemPrompt(productRepo.All())
	log.Info().Int("products", len(products)).Int("prompt_length", len(systemPrompt)).Msg("✓ System prompt assembled")

	// Initialize services
	gateway := service.NewGroqClient(cfg.GroqAPIKey, "")
	chatService := service.NewChatService(gateway, productRepo, systemPrompt)

	catalogService, err := service.NewCatalogService(productRepo, cfg.ChromePath)
	if err != nil {
		return nil, err
	}

	imageService := service.NewImageService(productRepo, nil, cfg.ImageCacheDir)
	if err := imageService.EnsureCacheDir(); err != nil {
		return nil, err
	}

	// Create controllers
	controllers := &router.Controllers{
		Chat:    controller.NewChatController(chatService),
		Product: controller.NewProductController(productRepo, imageService),
		Catalog: controller.NewCatalogController(catalogService),
	}

	return router.NewHandler(controllers), nil
}

// loadCatalog reads the catalog from Postgres when DATABASE_URL is set, from the catalog file otherwise
func loadCatalog(ctx context.Context, cfg config.Config) ([]models.Product, error) {
	if cfg.DatabaseURL == "" {
		return repository.LoadProductsFromFile(cfg.ProductsPath)
	}

	if err := db.InitDB(ctx, cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	// Nothing else reads the database after startup
	defer db.CloseDB()

	return repository.LoadProductsFromDB(ctx, db.DB)
}
