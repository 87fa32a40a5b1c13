// Package kvrepo persists the cart in the key-value storage layer, one JSON
// document under a fixed key, mirroring the single localStorage entry the
// storefront always used.
package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MohammedKaif278/A1KababCorner/internal/domain"
	"github.com/MohammedKaif278/A1KababCorner/internal/platform/kv"
)

// DefaultCartKey matches the storage key of the original storefront.
const DefaultCartKey = "cart"

// CartRepository stores the serialized cart line sequence under a fixed key.
type CartRepository struct {
	store  kv.Store
	key    string
	logger func(context.Context, string, map[string]any)
}

type storedCart struct {
	ID    string       `json:"id,omitempty"`
	Items []storedItem `json:"items"`
}

type storedItem struct {
	ProductID   string    `json:"id"`
	Title       string    `json:"title"`
	UnitPrice   int64     `json:"unitPrice"`
	Image       string    `json:"image"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"addedAt,omitempty"`
}

// NewCartRepository constructs a repository writing to the provided store.
// An empty key falls back to DefaultCartKey.
func NewCartRepository(store kv.Store, key string, logger func(context.Context, string, map[string]any)) (*CartRepository, error) {
	if store == nil {
		return nil, errors.New("kvrepo: store is required")
	}
	if key == "" {
		key = DefaultCartKey
	}
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &CartRepository{store: store, key: key, logger: logger}, nil
}

// Load reads and decodes the persisted cart. An absent key or a payload that
// fails to decode yields an empty cart, never an error: the worst outcome of
// corrupt storage is starting over with nothing in the cart.
func (r *CartRepository) Load(ctx context.Context) (domain.Cart, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return domain.Cart{}, nil
		}
		return domain.Cart{}, fmt.Errorf("kvrepo: load cart: %w", err)
	}

	var stored storedCart
	if err := json.Unmarshal(raw, &stored); err != nil {
		r.logger(ctx, "cart.storage_corrupt", map[string]any{
			"key":   r.key,
			"error": err.Error(),
		})
		return domain.Cart{}, nil
	}

	cart := domain.Cart{ID: stored.ID}
	for _, item := range stored.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			continue
		}
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID:   item.ProductID,
			Title:       item.Title,
			UnitPrice:   item.UnitPrice,
			Image:       item.Image,
			Category:    item.Category,
			Description: item.Description,
			Quantity:    item.Quantity,
			AddedAt:     item.AddedAt,
		})
	}
	return cart, nil
}

// Save serializes the full cart and writes it under the cart key.
func (r *CartRepository) Save(ctx context.Context, cart domain.Cart) error {
	stored := storedCart{ID: cart.ID, Items: make([]storedItem, 0, len(cart.Items))}
	for _, item := range cart.Items {
		stored.Items = append(stored.Items, storedItem{
			ProductID:   item.ProductID,
			Title:       item.Title,
			UnitPrice:   item.UnitPrice,
			Image:       item.Image,
			Category:    item.Category,
			Description: item.Description,
			Quantity:    item.Quantity,
			AddedAt:     item.AddedAt,
		})
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("kvrepo: encode cart: %w", err)
	}
	if err := r.store.Set(ctx, r.key, raw); err != nil {
		return fmt.Errorf("kvrepo: save cart: %w", err)
	}
	return nil
}

// Clear erases the persisted cart record.
func (r *CartRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("kvrepo: clear cart: %w", err)
	}
	return nil
}
