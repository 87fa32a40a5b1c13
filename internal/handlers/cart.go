package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MohammedKaif278/A1KababCorner/internal/domain"
	"github.com/MohammedKaif278/A1KababCorner/internal/platform/httpx"
	"github.com/MohammedKaif278/A1KababCorner/internal/services"
	"github.com/MohammedKaif278/A1KababCorner/internal/views"
)

const maxCartBodySize = 16 * 1024

// CartHandlers exposes the cart endpoints.
type CartHandlers struct {
	carts services.CartService
	views *views.Builder
}

// NewCartHandlers constructs cart handlers.
func NewCartHandlers(carts services.CartService, builder *views.Builder) *CartHandlers {
	return &CartHandlers{carts: carts, views: builder}
}

// Routes wires the /cart endpoints onto the provided router.
func (h *CartHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.getCart)
	r.Delete("/", h.clearCart)
	r.Post("/items", h.addItem)
	r.Post("/items/{productID}/quantity", h.changeQuantity)
	r.Delete("/items/{productID}", h.removeItem)
}

func (h *CartHandlers) getCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.carts == nil {
		httpx.WriteError(ctx, w, httpx.NewError("cart_unavailable", "cart service is unavailable", http.StatusServiceUnavailable))
		return
	}

	cart, err := h.carts.Snapshot(ctx)
	if err != nil {
		h.writeCartError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.views.Cart(cart))
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

func (h *CartHandlers) addItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.carts == nil {
		httpx.WriteError(ctx, w, httpx.NewError("cart_unavailable", "cart service is unavailable", http.StatusServiceUnavailable))
		return
	}

	body, err := readLimitedBody(r, maxCartBodySize)
	if err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	var req addItemRequest
	if err := json.Unmarshal(body, &req); err != nil || strings.TrimSpace(req.ProductID) == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "productId is required", http.StatusBadRequest))
		return
	}

	cart, err := h.carts.Add(ctx, req.ProductID)
	if err != nil {
		h.writeCartError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.views.Cart(cart))
}

type changeQuantityRequest struct {
	Direction string `json:"direction"`
}

func (h *CartHandlers) changeQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.carts == nil {
		httpx.WriteError(ctx, w, httpx.NewError("cart_unavailable", "cart service is unavailable", http.StatusServiceUnavailable))
		return
	}

	body, err := readLimitedBody(r, maxCartBodySize)
	if err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	var req changeQuantityRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "direction is required", http.StatusBadRequest))
		return
	}

	productID := chi.URLParam(r, "productID")
	cart, err := h.carts.ChangeQuantity(ctx, productID, domain.QuantityDirection(strings.TrimSpace(req.Direction)))
	if err != nil {
		h.writeCartError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.views.Cart(cart))
}

func (h *CartHandlers) removeItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.carts == nil {
		httpx.WriteError(ctx, w, httpx.NewError("cart_unavailable", "cart service is unavailable", http.StatusServiceUnavailable))
		return
	}

	cart, err := h.carts.Remove(ctx, chi.URLParam(r, "productID"))
	if err != nil {
		h.writeCartError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.views.Cart(cart))
}

func (h *CartHandlers) clearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.carts == nil {
		httpx.WriteError(ctx, w, httpx.NewError("cart_unavailable", "cart service is unavailable", http.StatusServiceUnavailable))
		return
	}

	if err := h.carts.Clear(ctx); err != nil {
		h.writeCartError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.views.Cart(domain.Cart{}))
}

func (h *CartHandlers) writeCartError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, services.ErrCartProductNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("product_not_found", "product not found", http.StatusNotFound))
	case errors.Is(err, services.ErrCartInvalidInput):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "invalid cart request", http.StatusBadRequest))
	case errors.Is(err, services.ErrCartUnavailable):
		httpx.WriteError(ctx, w, httpx.NewError("cart_unavailable", "cart storage is unavailable", http.StatusServiceUnavailable))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("cart_error", "cart operation failed", http.StatusInternalServerError))
	}
}

func writeBodyError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		httpx.WriteError(ctx, w, httpx.NewError("request_too_large", "request body is too large", http.StatusRequestEntityTooLarge))
		return
	}
	httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "unable to read request body", http.StatusBadRequest))
}
