package services

import (
	"context"

	"github.com/MohammedKaif278/A1KababCorner/internal/domain"
)

// CatalogService owns the session's product catalog: one load per session,
// read-only lookups and filtering afterwards.
type CatalogService interface {
	// Load fetches the external catalog resource, drops invalid entries,
	// and installs the surviving products. It returns the installed list.
	Load(ctx context.Context) ([]domain.Product, error)
	// Products returns the full catalog in load order.
	Products(ctx context.Context) ([]domain.Product, error)
	// Product resolves a single product by id.
	Product(ctx context.Context, id string) (domain.Product, error)
	// Search returns products whose title, description, or category
	// contains the query, case-insensitively.
	Search(ctx context.Context, query string) ([]domain.Product, error)
	// FilterByCategory returns products in the given category; the "all"
	// sentinel (or an empty category) returns everything.
	FilterByCategory(ctx context.Context, category string) ([]domain.Product, error)
}

// CartService owns the mutable cart line sequence and its persistence.
type CartService interface {
	// Restore initialises the cart from durable storage.
	Restore(ctx context.Context) error
	// Add puts one unit of the product in the cart, merging with an
	// existing line for the same product.
	Add(ctx context.Context, productID string) (domain.Cart, error)
	// ChangeQuantity adjusts a line by one in the given direction. A
	// decrease never drops a line below one unit; removal is explicit.
	ChangeQuantity(ctx context.Context, productID string, direction domain.QuantityDirection) (domain.Cart, error)
	// Remove deletes the line for the product when present.
	Remove(ctx context.Context, productID string) (domain.Cart, error)
	// Clear empties the cart and erases the persisted record.
	Clear(ctx context.Context) error
	// Snapshot returns a read-only copy of the cart for rendering.
	Snapshot(ctx context.Context) (domain.Cart, error)
	// TotalCount sums all line quantities.
	TotalCount(ctx context.Context) (int, error)
	// TotalPrice sums all line totals in minor units.
	TotalPrice(ctx context.Context) (int64, error)
}

// CheckoutService composes the order hand-off message from a cart snapshot.
type CheckoutService interface {
	// Compose builds the order message and its deep links. It has no side
	// effects; the caller clears the cart after a successful composition.
	Compose(ctx context.Context, cart domain.Cart, contact domain.Contact) (domain.CheckoutPayload, error)
}
