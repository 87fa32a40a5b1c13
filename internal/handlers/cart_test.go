package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MohammedKaif278/A1KababCorner/internal/domain"
	"github.com/MohammedKaif278/A1KababCorner/internal/services"
	"github.com/MohammedKaif278/A1KababCorner/internal/site"
	"github.com/MohammedKaif278/A1KababCorner/internal/views"
)

type stubCartService struct {
	restoreFunc        func(ctx context.Context) error
	addFunc            func(ctx context.Context, productID string) (domain.Cart, error)
	changeQuantityFunc func(ctx context.Context, productID string, direction domain.QuantityDirection) (domain.Cart, error)
	removeFunc         func(ctx context.Context, productID string) (domain.Cart, error)
	clearFunc          func(ctx context.Context) error
	snapshotFunc       func(ctx context.Context) (domain.Cart, error)
}

func (s *stubCartService) Restore(ctx context.Context) error {
	if s.restoreFunc != nil {
		return s.restoreFunc(ctx)
	}
	return nil
}

func (s *stubCartService) Add(ctx context.Context, productID string) (domain.Cart, error) {
	if s.addFunc != nil {
		return s.addFunc(ctx, productID)
	}
	return domain.Cart{}, nil
}

func (s *stubCartService) ChangeQuantity(ctx context.Context, productID string, direction domain.QuantityDirection) (domain.Cart, error) {
	if s.changeQuantityFunc != nil {
		return s.changeQuantityFunc(ctx, productID, direction)
	}
	return domain.Cart{}, nil
}

func (s *stubCartService) Remove(ctx context.Context, productID string) (domain.Cart, error) {
	if s.removeFunc != nil {
		return s.removeFunc(ctx, productID)
	}
	return domain.Cart{}, nil
}

func (s *stubCartService) Clear(ctx context.Context) error {
	if s.clearFunc != nil {
		return s.clearFunc(ctx)
	}
	return nil
}

func (s *stubCartService) Snapshot(ctx context.Context) (domain.Cart, error) {
	if s.snapshotFunc != nil {
		return s.snapshotFunc(ctx)
	}
	return domain.Cart{}, nil
}

func (s *stubCartService) TotalCount(ctx context.Context) (int, error) {
	cart, err := s.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return cart.TotalCount(), nil
}

func (s *stubCartService) TotalPrice(ctx context.Context) (int64, error) {
	cart, err := s.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return cart.TotalPrice(), nil
}

func newCartRouter(service services.CartService) chi.Router {
	handler := NewCartHandlers(service, views.NewBuilder(site.Defaults()))
	router := chi.NewRouter()
	router.Route("/cart", handler.Routes)
	return router
}

func sampleCart(now time.Time) domain.Cart {
	return domain.Cart{
		ID: "01J0CARTID",
		Items: []domain.CartItem{
			{ProductID: "1", Title: "Chicken Kabab", UnitPrice: 19950, Quantity: 2, AddedAt: now},
		},
		UpdatedAt: now,
	}
}

func TestCartHandlersGetCart(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service := &stubCartService{
		snapshotFunc: func(ctx context.Context) (domain.Cart, error) {
			return sampleCart(now), nil
		},
	}

	router := newCartRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var view views.CartView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view.Count != 2 {
		t.Fatalf("expected count 2, got %d", view.Count)
	}
	if view.TotalLabel != "399.00" {
		t.Fatalf("unexpected total %q", view.TotalLabel)
	}
	if view.Items[0].PriceLabel != "₹199.50 x 2" {
		t.Fatalf("unexpected price line %q", view.Items[0].PriceLabel)
	}
}

func TestCartHandlersAddItem(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service := &stubCartService{
		addFunc: func(ctx context.Context, productID string) (domain.Cart, error) {
			if productID != "1" {
				t.Fatalf("unexpected product id %q", productID)
			}
			return sampleCart(now), nil
		},
	}

	router := newCartRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"productId":"1"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestCartHandlersAddItemMissingProductID(t *testing.T) {
	router := newCartRouter(&stubCartService{})

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCartHandlersAddItemUnknownProduct(t *testing.T) {
	service := &stubCartService{
		addFunc: func(ctx context.Context, productID string) (domain.Cart, error) {
			return domain.Cart{}, services.ErrCartProductNotFound
		},
	}

	router := newCartRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"productId":"missing"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCartHandlersChangeQuantity(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service := &stubCartService{
		changeQuantityFunc: func(ctx context.Context, productID string, direction domain.QuantityDirection) (domain.Cart, error) {
			if productID != "1" {
				t.Fatalf("unexpected product id %q", productID)
			}
			if direction != domain.QuantityDecrease {
				t.Fatalf("unexpected direction %q", direction)
			}
			return sampleCart(now), nil
		},
	}

	router := newCartRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/cart/items/1/quantity", strings.NewReader(`{"direction":"decrease"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestCartHandlersChangeQuantityInvalidDirection(t *testing.T) {
	service := &stubCartService{
		changeQuantityFunc: func(ctx context.Context, productID string, direction domain.QuantityDirection) (domain.Cart, error) {
			return domain.Cart{}, services.ErrCartInvalidInput
		},
	}

	router := newCartRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/cart/items/1/quantity", strings.NewReader(`{"direction":"sideways"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCartHandlersRemoveItem(t *testing.T) {
	removed := false
	service := &stubCartService{
		removeFunc: func(ctx context.Context, productID string) (domain.Cart, error) {
			if productID != "1" {
				t.Fatalf("unexpected product id %q", productID)
			}
			removed = true
			return domain.Cart{}, nil
		},
	}

	router := newCartRouter(service)

	req := httptest.NewRequest(http.MethodDelete, "/cart/items/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !removed {
		t.Fatal("expected remove to be called")
	}

	var view views.CartView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !view.Empty {
		t.Fatalf("expected empty cart view, got %+v", view)
	}
}

func TestCartHandlersClearCart(t *testing.T) {
	cleared := false
	service := &stubCartService{
		clearFunc: func(ctx context.Context) error {
			cleared = true
			return nil
		},
	}

	router := newCartRouter(service)

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !cleared {
		t.Fatal("expected clear to be called")
	}
}

func TestCartHandlersStorageUnavailable(t *testing.T) {
	service := &stubCartService{
		snapshotFunc: func(ctx context.Context) (domain.Cart, error) {
			return domain.Cart{}, services.ErrCartUnavailable
		},
	}

	router := newCartRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
