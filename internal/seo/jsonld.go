package seo

import (
	"encoding/json"

	"github.com/MohammedKaif278/A1KababCorner/internal/domain"
	"github.com/MohammedKaif278/A1KababCorner/internal/format"
	"github.com/MohammedKaif278/A1KababCorner/internal/site"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Product returns the schema.org Product payload for a catalog entry.
func Product(product domain.Product, settings site.Settings) map[string]any {
	return map[string]any{
		"@context":    "https://schema.org/",
		"@type":       "Product",
		"name":        product.Title,
		"image":       []string{product.Image},
		"description": product.Description,
		"offers": map[string]any{
			"@type":         "Offer",
			"priceCurrency": settings.Currency,
			"price":         json.Number(format.Amount(product.Price)),
			"availability":  "https://schema.org/InStock",
		},
	}
}
