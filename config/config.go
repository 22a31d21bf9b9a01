package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds the externally configurable settings of the service.
// Model, sampling parameters, CORS policy and listen port are compiled in.
type Config struct {
	// Secret for the Groq completion API
	GroqAPIKey string `env:"GROQ_API_KEY,required,notEmpty"`

	// Catalog document (.json, .yaml or .yml)
	ProductsPath string `env:"PRODUCTS_PATH" envDefault:"products.json"`

	// When set the catalog is read from Postgres instead of ProductsPath
	DatabaseURL string `env:"DATABASE_URL"`

	// Headless Chrome used for PDF export; autodetected when empty
	ChromePath string `env:"CHROME_PATH"`

	ImageCacheDir string `env:"IMAGE_CACHE_DIR" envDefault:"cache/images"`

	Env string `env:"ENV" envDefault:"development"`
}

// IsProduction reports whether the service runs with ENV=production
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load loads .env (outside production) and parses environment variables into Config.
func Load() (Config, error) {
	// In production variables are set directly on the process
	if !(Config{Env: os.Getenv("ENV")}).IsProduction() {
		envPath := ".env"
		if err := godotenv.Overload(envPath); err != nil {
			log.Debug().Err(err).Str("path", envPath).Msg(".env file not loaded, using system environment variables")
		} else {
			log.Info().Str("path", envPath).Msg("loaded environment variables")
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
