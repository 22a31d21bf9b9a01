package service

import (
	"strings"

	"beautygpt-api/models"
)

// MaxMentionedProducts caps the products attached to a chat reply
const MaxMentionedProducts = 3

// ExtractMentionedProducts returns the catalog products whose name or brand appears
// in text, ignoring case. Matches keep catalog order, the first product with a given
// id wins, and at most limit products are returned. The result is never nil.
//
// This is a substring heuristic: a brand shared by several products matches all of them,
// and a misspelled name matches none.
func ExtractMentionedProducts(text string, products []models.Product, limit int) []models.Product {
	if limit <= 0 || text == "" {
		return []models.Product{}
	}
	out := make([]models.Product, 0, min(limit, len(products)))

	lowered := strings.ToLower(text)
	seen := make(map[int]bool)

	for _, p := range products {
		if seen[p.ID] || !mentions(lowered, p) {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}

	return out
}

// mentions reports whether the lowered text contains the product name or brand.
// Empty names and brands never match.
func mentions(lowered string, p models.Product) bool {
	if name := strings.ToLower(p.Name); name != "" && strings.Contains(lowered, name) {
		return true
	}
	if brand := strings.ToLower(p.Brand); brand != "" && strings.Contains(lowered, brand) {
		return true
	}
	return false
}
