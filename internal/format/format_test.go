package format

import "testing"

func TestAmount(t *testing.T) {
	cases := []struct {
		minor int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{50, "0.50"},
		{19950, "199.50"},
		{39900, "399.00"},
		{-1250, "-12.50"},
	}
	for _, tc := range cases {
		if got := Amount(tc.minor); got != tc.want {
			t.Errorf("Amount(%d) = %q, want %q", tc.minor, got, tc.want)
		}
	}
}

func TestPrice(t *testing.T) {
	if got, want := Price(19950), "₹199.50"; got != want {
		t.Fatalf("Price = %q, want %q", got, want)
	}
}

func TestPriceLine(t *testing.T) {
	if got, want := PriceLine(19950, 2), "₹199.50 x 2"; got != want {
		t.Fatalf("PriceLine = %q, want %q", got, want)
	}
}
