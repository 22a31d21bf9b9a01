package service

import (
	"beautygpt-api/models"
)

func testProducts() []models.Product {
	return []models.Product{
		{
			ID:             1,
			Name:           "HydraGlow Serum",
			Brand:          "PureSkin",
			Price:          24.9,
			Category:       "serum",
			SkinTypes:      []string{"dry"},
			AgeRange:       []string{"25-35", "35-45"},
			Benefits:       []string{"idratazione profonda", "luminosità"},
			KeyIngredients: []string{"acido ialuronico"},
			AmazonURL:      "https://www.amazon.it/dp/B000000001",
		},
		{
			ID:             2,
			Name:           "Gentle Foam Cleanser",
			Brand:          "Dermalia",
			Price:          12.5,
			Category:       "cleanser",
			SkinTypes:      []string{"oily", "combination"},
			AgeRange:       []string{"18-25"},
			Benefits:       []string{"pulizia delicata"},
			KeyIngredients: []string{"acido salicilico"},
			AmazonURL:      "https://www.amazon.it/dp/B000000002",
		},
		{
			ID:             3,
			Name:           "Night Repair Cream",
			Brand:          "Lumière",
			Price:          39,
			Category:       "cream",
			SkinTypes:      []string{"dry", "mature"},
			AgeRange:       []string{"45+"},
			Benefits:       []string{"anti-age"},
			KeyIngredients: []string{"retinolo", "peptidi"},
			AmazonURL:      "https://www.amazon.it/dp/B000000003",
		},
	}
}

func productIDs(products []models.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
