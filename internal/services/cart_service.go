package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/MohammedKaif278/A1KababCorner/internal/domain"
	"github.com/MohammedKaif278/A1KababCorner/internal/repositories"
)

var (
	// ErrCartInvalidInput indicates the caller supplied invalid input.
	ErrCartInvalidInput = errors.New("cart service: invalid input")
	// ErrCartProductNotFound indicates the product id does not resolve in the catalog.
	ErrCartProductNotFound = errors.New("cart service: product not found")
	// ErrCartUnavailable indicates the cart could not be persisted.
	ErrCartUnavailable = errors.New("cart service: unavailable")

	errCartRepositoryRequired = errors.New("cart service: repository is required")
	errCartCatalogRequired    = errors.New("cart service: catalog is required")
)

// productFinder resolves catalog products for cart additions.
type productFinder interface {
	Product(ctx context.Context, id string) (domain.Product, error)
}

// CartServiceDeps wires the repository and catalog dependencies for cart operations.
type CartServiceDeps struct {
	Repository  repositories.CartRepository
	Catalog     productFinder
	Clock       func() time.Time
	Logger      func(context.Context, string, map[string]any)
	IDGenerator func() string
}

type cartService struct {
	repo    repositories.CartRepository
	catalog productFinder
	now     func() time.Time
	newID   func() string
	logger  func(context.Context, string, map[string]any)

	mu   sync.Mutex
	cart domain.Cart
}

// NewCartService constructs a CartService enforcing dependency validation.
func NewCartService(deps CartServiceDeps) (CartService, error) {
	if deps.Repository == nil {
		return nil, errCartRepositoryRequired
	}
	if deps.Catalog == nil {
		return nil, errCartCatalogRequired
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = func() string { return ulid.Make().String() }
	}

	service := &cartService{
		repo:    deps.Repository,
		catalog: deps.Catalog,
		now:     func() time.Time { return clock().UTC() },
		newID:   idGen,
		logger:  logger,
	}
	service.cart.ID = service.newID()
	return service, nil
}

// Restore loads the persisted cart. Corrupt or absent storage yields an
// empty cart, so a failed restore only happens when the backend itself is down.
func (s *cartService) Restore(ctx context.Context) error {
	restored, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCartUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if restored.ID == "" {
		restored.ID = s.cart.ID
	}
	s.cart = restored
	return nil
}

func (s *cartService) Add(ctx context.Context, productID string) (domain.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return domain.Cart{}, ErrCartInvalidInput
	}

	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrCatalogProductNotFound) || errors.Is(err, repositories.ErrNotFound) {
			return domain.Cart{}, ErrCartProductNotFound
		}
		return domain.Cart{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneCart(s.cart)
	merged := false
	for i := range next.Items {
		if next.Items[i].ProductID == productID {
			next.Items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		next.Items = append(next.Items, domain.CartItem{
			ProductID:   product.ID,
			Title:       product.Title,
			UnitPrice:   product.Price,
			Image:       product.Image,
			Category:    product.Category,
			Description: product.Description,
			Quantity:    1,
			AddedAt:     s.now(),
		})
	}

	if err := s.commitLocked(ctx, next); err != nil {
		return domain.Cart{}, err
	}
	s.logger(ctx, "cart.item_added", map[string]any{
		"productID": productID,
		"count":     s.cart.TotalCount(),
	})
	return cloneCart(s.cart), nil
}

func (s *cartService) ChangeQuantity(ctx context.Context, productID string, direction domain.QuantityDirection) (domain.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return domain.Cart{}, ErrCartInvalidInput
	}
	if direction != domain.QuantityIncrease && direction != domain.QuantityDecrease {
		return domain.Cart{}, fmt.Errorf("%w: direction %q", ErrCartInvalidInput, direction)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneCart(s.cart)
	found := false
	for i := range next.Items {
		if next.Items[i].ProductID != productID {
			continue
		}
		found = true
		switch direction {
		case domain.QuantityIncrease:
			next.Items[i].Quantity++
		case domain.QuantityDecrease:
			// The floor is one unit; dropping a line is an explicit remove.
			if next.Items[i].Quantity > 1 {
				next.Items[i].Quantity--
			}
		}
		break
	}

	if !found {
		return cloneCart(s.cart), nil
	}

	if err := s.commitLocked(ctx, next); err != nil {
		return domain.Cart{}, err
	}
	return cloneCart(s.cart), nil
}

func (s *cartService) Remove(ctx context.Context, productID string) (domain.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return domain.Cart{}, ErrCartInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneCart(s.cart)
	removed := false
	for i := range next.Items {
		if next.Items[i].ProductID == productID {
			next.Items = append(next.Items[:i], next.Items[i+1:]...)
			removed = true
			break
		}
	}

	if !removed {
		return cloneCart(s.cart), nil
	}

	if err := s.commitLocked(ctx, next); err != nil {
		return domain.Cart{}, err
	}
	s.logger(ctx, "cart.item_removed", map[string]any{"productID": productID})
	return cloneCart(s.cart), nil
}

func (s *cartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrCartUnavailable, err)
	}
	s.cart = domain.Cart{ID: s.newID(), UpdatedAt: s.now()}
	s.logger(ctx, "cart.cleared", nil)
	return nil
}

func (s *cartService) Snapshot(_ context.Context) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCart(s.cart), nil
}

func (s *cartService) TotalCount(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalCount(), nil
}

func (s *cartService) TotalPrice(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalPrice(), nil
}

// commitLocked persists the candidate cart and installs it on success. The
// in-memory state never diverges from storage on a failed write.
func (s *cartService) commitLocked(ctx context.Context, next domain.Cart) error {
	next.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, next); err != nil {
		s.logger(ctx, "cart.persist_failed", map[string]any{"error": err.Error()})
		return fmt.Errorf("%w: %v", ErrCartUnavailable, err)
	}
	s.cart = next
	return nil
}

func cloneCart(cart domain.Cart) domain.Cart {
	cloned := cart
	cloned.Items = make([]domain.CartItem, len(cart.Items))
	copy(cloned.Items, cart.Items)
	return cloned
}
