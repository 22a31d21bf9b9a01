package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"beautygpt-api/models"
)

var (
	// ErrCatalogNotFound is returned when the catalog source does not exist
	ErrCatalogNotFound = errors.New("product catalog not found")
	// ErrCatalogMalformed is returned when the catalog source cannot be parsed
	ErrCatalogMalformed = errors.New("product catalog malformed")
)

// LoadProductsFromFile reads the catalog document at path.
// YAML is used for .yaml/.yml files, JSON for everything else.
func LoadProductsFromFile(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, path)
		}
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	products, err := ParseProducts(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Info().Str("path", path).Int("products", len(products)).Msg("✓ Product catalog loaded")
	return products, nil
}

// ParseProducts decodes a catalog document; ext selects the format (".yaml", ".yml" or JSON)
func ParseProducts(data []byte, ext string) ([]models.Product, error) {
	var doc models.ProductCatalogFile

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCatalogMalformed, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCatalogMalformed, err)
		}
	}

	if doc.Products == nil {
		return nil, fmt.Errorf("%w: missing \"products\" list", ErrCatalogMalformed)
	}

	products := *doc.Products
	if err := validateProducts(products); err != nil {
		return nil, err
	}
	return products, nil
}

func validateProducts(products []models.Product) error {
	seen := make(map[int]bool, len(products))
	for _, p := range products {
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate product id %d", ErrCatalogMalformed, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// Querier is the subset of *sql.DB used to read the catalog
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

const selectProductsQuery = `
	SELECT
		id,
		name,
		brand,
		price,
		category,
		COALESCE(skin_types, '{}') AS skin_types,
		COALESCE(age_range, '{}') AS age_range,
		COALESCE(benefits, '{}') AS benefits,
		COALESCE(key_ingredients, '{}') AS key_ingredients,
		amazon_url,
		COALESCE(image_url, '') AS image_url,
		COALESCE(description, '') AS description
	FROM products
	ORDER BY id ASC
`

// LoadProductsFromDB reads the whole catalog from the products table
func LoadProductsFromDB(ctx context.Context, q Querier) ([]models.Product, error) {
	rows, err := q.QueryContext(ctx, selectProductsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	// text[] columns are decoded through pgx's type map
	typeMap := pgtype.NewMap()

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Brand,
			&p.Price,
			&p.Category,
			typeMap.SQLScanner(&p.SkinTypes),
			typeMap.SQLScanner(&p.AgeRange),
			typeMap.SQLScanner(&p.Benefits),
			typeMap.SQLScanner(&p.KeyIngredients),
			&p.AmazonURL,
			&p.ImageURL,
			&p.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan product: %v", ErrCatalogMalformed, err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	if err := validateProducts(products); err != nil {
		return nil, err
	}

	log.Info().Int("products", len(products)).Msg("✓ Product catalog loaded from database")
	return products, nil
}
