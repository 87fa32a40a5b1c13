// Package seo builds the page metadata and structured data emitted for
// product detail pages.
package seo

import (
	"strings"

	"github.com/MohammedKaif278/A1KababCorner/internal/domain"
	"github.com/MohammedKaif278/A1KababCorner/internal/site"
)

// Meta holds the head metadata for a product page.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// ProductMeta derives the page metadata for a single product.
func ProductMeta(product domain.Product, settings site.Settings) Meta {
	description := strings.TrimSpace(product.Description)
	if description == "" {
		description = settings.DefaultDescription
	}

	keywords := append([]string{product.Title}, settings.KeywordTags...)
	return Meta{
		Title:       product.Title + " | " + settings.Name,
		Description: description,
		Keywords:    strings.Join(keywords, ", "),
	}
}
