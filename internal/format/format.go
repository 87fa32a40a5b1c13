package format

import "fmt"

// Amount renders minor units as a plain two-decimal string.
// Example: Amount(19950) => "199.50"
func Amount(minor int64) string {
	neg := minor < 0
	if neg {
		minor = -minor
	}
	s := fmt.Sprintf("%d.%02d", minor/100, minor%100)
	if neg {
		return "-" + s
	}
	return s
}

// Price renders minor units with the rupee symbol.
// Example: Price(19950) => "₹199.50"
func Price(minor int64) string {
	return "₹" + Amount(minor)
}

// PriceLine renders the cart line form "₹199.50 x 2".
func PriceLine(unitMinor int64, quantity int) string {
	return fmt.Sprintf("%s x %d", Price(unitMinor), quantity)
}
