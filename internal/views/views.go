// Package views maps catalog and cart state to renderable view data. The
// builders are pure apart from markdown conversion; they never touch the
// stores they render.
package views

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/MohammedKaif278/A1KababCorner/internal/domain"
	"github.com/MohammedKaif278/A1KababCorner/internal/format"
	"github.com/MohammedKaif278/A1KababCorner/internal/site"
)

// noResultsMessage matches the original storefront's empty-catalog card.
const noResultsMessage = "No products found. Try a different search."

// emptyCartMessage matches the original cart panel's empty state.
const emptyCartMessage = "Your cart is empty."

// CardView is one product card in the catalog grid.
type CardView struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Image      string `json:"image"`
	Category   string `json:"category,omitempty"`
	PriceLabel string `json:"priceLabel"`
}

// CatalogView aggregates the catalog grid. An empty product list renders an
// explicit no-results state so callers can tell "nothing matched" from
// "nothing rendered yet".
type CatalogView struct {
	Cards     []CardView `json:"cards"`
	Empty     bool       `json:"empty"`
	EmptyNote string     `json:"emptyNote,omitempty"`
}

// DetailView is the full-field view of one product.
type DetailView struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Image           string `json:"image"`
	Category        string `json:"category,omitempty"`
	PriceLabel      string `json:"priceLabel"`
	Description     string `json:"description,omitempty"`
	DescriptionHTML string `json:"descriptionHtml,omitempty"`
}

// CartLineView is one formatted line of the cart panel.
type CartLineView struct {
	ProductID  string `json:"id"`
	Title      string `json:"title"`
	Image      string `json:"image"`
	Quantity   int    `json:"quantity"`
	PriceLabel string `json:"priceLabel"`
	LineLabel  string `json:"lineLabel"`
}

// CartView aggregates the cart panel with its totals.
type CartView struct {
	Items      []CartLineView `json:"items"`
	Count      int            `json:"count"`
	TotalLabel string         `json:"totalLabel"`
	Empty      bool           `json:"empty"`
	EmptyNote  string         `json:"emptyNote,omitempty"`
}

// Builder renders view data using the storefront settings.
type Builder struct {
	settings site.Settings
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

// NewBuilder constructs a Builder for the given settings.
func NewBuilder(settings site.Settings) *Builder {
	return &Builder{
		settings: settings,
		markdown: goldmark.New(),
		policy:   bluemonday.UGCPolicy(),
	}
}

// Catalog renders the card grid for the given products.
func (b *Builder) Catalog(products []domain.Product) CatalogView {
	if len(products) == 0 {
		return CatalogView{Empty: true, EmptyNote: noResultsMessage}
	}

	cards := make([]CardView, 0, len(products))
	for _, product := range products {
		cards = append(cards, CardView{
			ID:         product.ID,
			Title:      product.Title,
			Image:      b.resolveImage(product.Image),
			Category:   product.Category,
			PriceLabel: format.Price(product.Price),
		})
	}
	return CatalogView{Cards: cards}
}

// Detail renders the full view for one product.
func (b *Builder) Detail(product domain.Product) DetailView {
	return DetailView{
		ID:              product.ID,
		Title:           product.Title,
		Image:           b.resolveImage(product.Image),
		Category:        product.Category,
		PriceLabel:      format.Price(product.Price),
		Description:     product.Description,
		DescriptionHTML: b.renderDescription(product.Description),
	}
}

// Cart renders the cart panel with per-line and aggregate formatting.
func (b *Builder) Cart(cart domain.Cart) CartView {
	if len(cart.Items) == 0 {
		return CartView{Count: 0, TotalLabel: format.Amount(0), Empty: true, EmptyNote: emptyCartMessage}
	}

	lines := make([]CartLineView, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, CartLineView{
			ProductID:  item.ProductID,
			Title:      item.Title,
			Image:      b.resolveImage(item.Image),
			Quantity:   item.Quantity,
			PriceLabel: format.PriceLine(item.UnitPrice, item.Quantity),
			LineLabel:  format.Price(item.LineTotal()),
		})
	}
	return CartView{
		Items:      lines,
		Count:      cart.TotalCount(),
		TotalLabel: format.Amount(cart.TotalPrice()),
	}
}

func (b *Builder) resolveImage(image string) string {
	image = strings.TrimSpace(image)
	if image == "" {
		return b.settings.FallbackImage
	}
	return image
}

func (b *Builder) renderDescription(description string) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := b.markdown.Convert([]byte(description), &buf); err != nil {
		return ""
	}
	return strings.TrimSpace(b.policy.Sanitize(buf.String()))
}
