package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/MohammedKaif278/A1KababCorner/internal/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("repositories: not found")

// CatalogSource fetches the raw catalog entries from the external resource.
// Entries are returned undecoded so the catalog service can drop malformed
// records individually; only a total fetch or decode failure is an error.
type CatalogSource interface {
	Fetch(ctx context.Context) ([]json.RawMessage, error)
}

// CatalogRepository holds the session's product list. The list is replaced
// wholesale on load and read-only afterwards.
type CatalogRepository interface {
	ReplaceAll(ctx context.Context, products []domain.Product) error
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (domain.Product, error)
}

// CartRepository persists the full cart under a fixed key. Load never fails
// on absent or corrupt data; it reports an empty cart instead.
type CartRepository interface {
	Load(ctx context.Context) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
	Clear(ctx context.Context) error
}
