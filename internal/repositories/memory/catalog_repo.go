package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/MohammedKaif278/A1KababCorner/internal/domain"
	"github.com/MohammedKaif278/A1KababCorner/internal/repositories"
)

// CatalogRepository keeps the loaded product list in memory. The catalog is
// replaced wholesale per session load, so reads only need a read lock.
type CatalogRepository struct {
	mu       sync.RWMutex
	products []domain.Product
	byID     map[string]int
}

// NewCatalogRepository constructs an empty catalog repository.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{byID: make(map[string]int)}
}

// ReplaceAll swaps the stored product list for the provided one.
func (r *CatalogRepository) ReplaceAll(_ context.Context, products []domain.Product) error {
	copied := make([]domain.Product, len(products))
	copy(copied, products)

	index := make(map[string]int, len(copied))
	for i, product := range copied {
		index[product.ID] = i
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = copied
	r.byID = index
	return nil
}

// List returns the products in load order.
func (r *CatalogRepository) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	copied := make([]domain.Product, len(r.products))
	copy(copied, r.products)
	return copied, nil
}

// FindByID returns the product with the given id or repositories.ErrNotFound.
func (r *CatalogRepository) FindByID(_ context.Context, id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("catalog product %q: %w", id, repositories.ErrNotFound)
	}
	return r.products[idx], nil
}
