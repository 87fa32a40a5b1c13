package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MohammedKaif278/A1KababCorner/internal/domain"
	"github.com/MohammedKaif278/A1KababCorner/internal/platform/httpx"
	"github.com/MohammedKaif278/A1KababCorner/internal/services"
)

const maxCheckoutBodySize = 32 * 1024

// CheckoutHandlers exposes the order hand-off endpoint.
type CheckoutHandlers struct {
	carts    services.CartService
	checkout services.CheckoutService
}

// NewCheckoutHandlers constructs checkout handlers.
func NewCheckoutHandlers(carts services.CartService, checkout services.CheckoutService) *CheckoutHandlers {
	return &CheckoutHandlers{carts: carts, checkout: checkout}
}

// Routes wires the /checkout endpoint onto the provided router.
func (h *CheckoutHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.placeOrder)
}

type checkoutRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func (h *CheckoutHandlers) placeOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.carts == nil || h.checkout == nil {
		httpx.WriteError(ctx, w, httpx.NewError("checkout_unavailable", "checkout service is unavailable", http.StatusServiceUnavailable))
		return
	}

	body, err := readLimitedBody(r, maxCheckoutBodySize)
	if err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	var req checkoutRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "request body must be a JSON object", http.StatusBadRequest))
			return
		}
	}

	cart, err := h.carts.Snapshot(ctx)
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("cart_unavailable", "cart storage is unavailable", http.StatusServiceUnavailable))
		return
	}

	contact := domain.Contact{
		Name:    strings.TrimSpace(req.Name),
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
		Notes:   strings.TrimSpace(req.Notes),
	}

	payload, err := h.checkout.Compose(ctx, cart, contact)
	if err != nil {
		h.writeCheckoutError(w, r, err)
		return
	}

	// A successful hand-off empties the cart.
	if err := h.carts.Clear(ctx); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("cart_unavailable", "failed to clear cart after checkout", http.StatusServiceUnavailable))
		return
	}

	httpx.WriteJSON(w, http.StatusOK, payload)
}

func (h *CheckoutHandlers) writeCheckoutError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, services.ErrCheckoutEmptyCart):
		httpx.WriteError(ctx, w, httpx.NewError("empty_cart", "cart has no items", http.StatusConflict))
	case errors.Is(err, services.ErrCheckoutContactIncomplete):
		httpx.WriteError(ctx, w, httpx.NewError("contact_incomplete", "name, phone, and address are required", http.StatusUnprocessableEntity))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("checkout_error", "checkout failed", http.StatusInternalServerError))
	}
}
