package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Product is a catalog entry, immutable once loaded.
type Product struct {
	ID          string
	Title       string
	Price       int64 // minor units (paise)
	Image       string
	Category    string
	Description string
}

// CartItem stores a Product snapshot plus the selected quantity.
// Items copy product fields at add time, so later catalog changes never
// alter lines already in the cart.
type CartItem struct {
	ProductID   string
	Title       string
	UnitPrice   int64
	Image       string
	Category    string
	Description string
	Quantity    int
	AddedAt     time.Time
}

// LineTotal returns the price of the full line in minor units.
func (i CartItem) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// Cart aggregates the mutable shopping cart state for the session.
type Cart struct {
	ID        string
	Items     []CartItem
	UpdatedAt time.Time
}

// TotalCount sums the quantities of all lines.
func (c Cart) TotalCount() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums line totals in minor units.
func (c Cart) TotalPrice() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.LineTotal()
	}
	return total
}

// Contact carries the user-supplied checkout contact fields.
type Contact struct {
	Name    string
	Phone   string
	Address string
	Notes   string
}

// CheckoutPayload is the composed order message plus its deep links.
type CheckoutPayload struct {
	ID         string
	Message    string
	DeepLink   string
	MapsLink   string
	Total      int64
	ItemCount  int
	ComposedAt time.Time
}

// QuantityDirection selects the direction of a cart quantity change.
type QuantityDirection string

const (
	// QuantityIncrease adds one to the line quantity.
	QuantityIncrease QuantityDirection = "increase"
	// QuantityDecrease subtracts one, never dropping below one.
	QuantityDecrease QuantityDirection = "decrease"
)

// ErrInvalidPrice indicates a price literal that cannot be represented in minor units.
var ErrInvalidPrice = errors.New("domain: invalid price")

// ParsePrice converts a decimal price literal such as "199.5" into minor
// units without going through floating point. At most two fractional digits
// are accepted; negative prices are rejected.
func ParsePrice(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}

	whole, frac := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		whole, frac = s[:idx], s[idx+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	for i := 0; i < len(frac); i++ {
		if frac[i] < '0' || frac[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
		}
	}
	for len(frac) < 2 {
		frac += "0"
	}

	major, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	var minor int64
	if frac != "00" {
		minor, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
		}
	}
	return major*100 + minor, nil
}
