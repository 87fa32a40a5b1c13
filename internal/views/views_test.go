package views

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MohammedKaif278/A1KababCorner/internal/domain"
	"github.com/MohammedKaif278/A1KababCorner/internal/site"
)

func testBuilder() *Builder {
	return NewBuilder(site.Defaults())
}

func TestCatalogView(t *testing.T) {
	view := testBuilder().Catalog([]domain.Product{
		{ID: "1", Title: "Chicken Tikka", Price: 19950, Image: "a.jpg", Category: "tandoori"},
		{ID: "2", Title: "Paneer Roll", Price: 12000, Image: "  "},
	})

	want := CatalogView{Cards: []CardView{
		{ID: "1", Title: "Chicken Tikka", Image: "a.jpg", Category: "tandoori", PriceLabel: "₹199.50"},
		{ID: "2", Title: "Paneer Roll", Image: "fallback.jpg", PriceLabel: "₹120.00"},
	}}
	if diff := cmp.Diff(want, view); diff != "" {
		t.Fatalf("catalog view mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalogViewNoResultsSentinel(t *testing.T) {
	view := testBuilder().Catalog(nil)

	if !view.Empty {
		t.Fatalf("expected explicit empty state")
	}
	if view.EmptyNote != "No products found. Try a different search." {
		t.Fatalf("unexpected empty note %q", view.EmptyNote)
	}
	if len(view.Cards) != 0 {
		t.Fatalf("empty catalog must not render cards, got %d", len(view.Cards))
	}
}

func TestDetailView(t *testing.T) {
	view := testBuilder().Detail(domain.Product{
		ID:          "1",
		Title:       "Chicken Tikka",
		Price:       19950,
		Image:       "a.jpg",
		Category:    "tandoori",
		Description: "Char-grilled and **spicy**.",
	})

	if view.PriceLabel != "₹199.50" {
		t.Fatalf("unexpected price label %q", view.PriceLabel)
	}
	if view.Description != "Char-grilled and **spicy**." {
		t.Fatalf("raw description must be preserved, got %q", view.Description)
	}
	if !strings.Contains(view.DescriptionHTML, "<strong>spicy</strong>") {
		t.Fatalf("expected markdown emphasis rendered, got %q", view.DescriptionHTML)
	}
}

func TestDetailViewSanitizesDescription(t *testing.T) {
	view := testBuilder().Detail(domain.Product{
		ID:          "1",
		Title:       "Chicken Tikka",
		Price:       19950,
		Image:       "a.jpg",
		Description: `spicy <script>alert("x")</script>`,
	})

	if strings.Contains(view.DescriptionHTML, "<script>") {
		t.Fatalf("script tags must be stripped, got %q", view.DescriptionHTML)
	}
	if !strings.Contains(view.DescriptionHTML, "spicy") {
		t.Fatalf("content text must survive sanitizing, got %q", view.DescriptionHTML)
	}
}

func TestCartView(t *testing.T) {
	view := testBuilder().Cart(domain.Cart{Items: []domain.CartItem{
		{ProductID: "1", Title: "Chicken Tikka", UnitPrice: 19950, Image: "a.jpg", Quantity: 2},
		{ProductID: "2", Title: "Paneer Roll", UnitPrice: 12000, Image: "", Quantity: 1},
	}})

	want := CartView{
		Items: []CartLineView{
			{ProductID: "1", Title: "Chicken Tikka", Image: "a.jpg", Quantity: 2, PriceLabel: "₹199.50 x 2", LineLabel: "₹399.00"},
			{ProductID: "2", Title: "Paneer Roll", Image: "fallback.jpg", Quantity: 1, PriceLabel: "₹120.00 x 1", LineLabel: "₹120.00"},
		},
		Count:      3,
		TotalLabel: "519.00",
	}
	if diff := cmp.Diff(want, view); diff != "" {
		t.Fatalf("cart view mismatch (-want +got):\n%s", diff)
	}
}

func TestCartViewEmptyState(t *testing.T) {
	view := testBuilder().Cart(domain.Cart{})

	if !view.Empty {
		t.Fatalf("expected explicit empty state")
	}
	if view.EmptyNote != "Your cart is empty." {
		t.Fatalf("unexpected empty note %q", view.EmptyNote)
	}
	if view.Count != 0 || view.TotalLabel != "0.00" {
		t.Fatalf("empty cart totals should be 0/0.00, got %d/%q", view.Count, view.TotalLabel)
	}
}
