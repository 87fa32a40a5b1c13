package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/MohammedKaif278/A1KababCorner/internal/domain"
	"github.com/MohammedKaif278/A1KababCorner/internal/format"
	"github.com/MohammedKaif278/A1KababCorner/internal/site"
)

// defaultNotes replaces an empty notes field in the composed message.
const defaultNotes = "None"

var (
	// ErrCheckoutEmptyCart indicates checkout was attempted with no items.
	ErrCheckoutEmptyCart = errors.New("checkout service: cart is empty")
	// ErrCheckoutContactIncomplete indicates a required contact field is missing.
	ErrCheckoutContactIncomplete = errors.New("checkout service: contact is incomplete")

	errCheckoutNumberRequired = errors.New("checkout service: whatsapp number is required")
)

// CheckoutServiceDeps wires the settings and generators for checkout composition.
type CheckoutServiceDeps struct {
	Settings    site.Settings
	Clock       func() time.Time
	Logger      func(context.Context, string, map[string]any)
	IDGenerator func() string
}

type checkoutService struct {
	settings site.Settings
	now      func() time.Time
	newID    func() string
	logger   func(context.Context, string, map[string]any)
}

// NewCheckoutService constructs a CheckoutService validating required settings.
func NewCheckoutService(deps CheckoutServiceDeps) (CheckoutService, error) {
	if strings.TrimSpace(deps.Settings.WhatsAppNumber) == "" {
		return nil, errCheckoutNumberRequired
	}
	settings := deps.Settings
	if strings.TrimSpace(settings.Name) == "" {
		settings.Name = site.Defaults().Name
	}
	if strings.TrimSpace(settings.MapsBaseURL) == "" {
		settings.MapsBaseURL = site.Defaults().MapsBaseURL
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

	return &checkoutService{
		settings: settings,
		now:      func() time.Time { return clock().UTC() },
		newID:    idGen,
		logger:   logger,
	}, nil
}

func (s *checkoutService) Compose(ctx context.Context, cart domain.Cart, contact domain.Contact) (domain.CheckoutPayload, error) {
	if len(cart.Items) == 0 {
		return domain.CheckoutPayload{}, ErrCheckoutEmptyCart
	}

	name := strings.TrimSpace(contact.Name)
	phone := strings.TrimSpace(contact.Phone)
	address := strings.TrimSpace(contact.Address)
	if name == "" || phone == "" || address == "" {
		return domain.CheckoutPayload{}, ErrCheckoutContactIncomplete
	}
	notes := strings.TrimSpace(contact.Notes)
	if notes == "" {
		notes = defaultNotes
	}

	mapsLink := s.settings.MapsBaseURL + encodeComponent(address)

	var msg strings.Builder
	fmt.Fprintf(&msg, "🛒 *%s*\n", s.settings.Name)
	fmt.Fprintf(&msg, "👤 Name: %s\n", name)
	fmt.Fprintf(&msg, "📞 Phone: %s\n", phone)
	fmt.Fprintf(&msg, "🏠 Address: %s\n", address)
	fmt.Fprintf(&msg, "📍 Map: %s\n\n", mapsLink)

	for _, item := range cart.Items {
		fmt.Fprintf(&msg, "• %s x %d = ₹%s\n", item.Title, item.Quantity, format.Amount(item.LineTotal()))
	}

	total := cart.TotalPrice()
	fmt.Fprintf(&msg, "\n📝 Notes: %s\n", notes)
	fmt.Fprintf(&msg, "💰 Total: ₹%s", format.Amount(total))

	message := msg.String()
	payload := domain.CheckoutPayload{
		ID:         s.newID(),
		Message:    message,
		DeepLink:   "https://wa.me/" + s.settings.WhatsAppNumber + "?text=" + encodeComponent(message),
		MapsLink:   mapsLink,
		Total:      total,
		ItemCount:  cart.TotalCount(),
		ComposedAt: s.now(),
	}

	s.logger(ctx, "checkout.composed", map[string]any{
		"payloadID": payload.ID,
		"items":     payload.ItemCount,
		"total":     payload.Total,
	})
	return payload, nil
}

// encodeComponent escapes a URL query component the way browsers do, with
// spaces as %20 rather than +.
func encodeComponent(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}
