package tax

import (
	"testing"

	"github.com/shopspring/decimal"
)

func decimalClose(a, b decimal.Decimal, tolerance float64) bool {
	return a.Sub(b).Abs().LessThanOrEqual(decimal.NewFromFloat(tolerance))
}

func TestGSTFromExclusive(t *testing.T) {
	tests := []struct {
		net  string
		want string
	}{
		{"100", "15"},
		{"0", "0"},
		{"1500", "225"},
		{"33.33", "5"},
	}
	for _, tt := range tests {
		got := GSTFromExclusive(decimal.RequireFromString(tt.net))
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("GSTFromExclusive(%s) = %s, want %s", tt.net, got, tt.want)
		}
	}
}

func TestGSTFromInclusive(t *testing.T) {
	tests := []struct {
		gross string
		want  string
	}{
		{"115", "15"},
		{"0", "0"},
		{"230", "30"},
		{"800", "104.35"},
	}
	for _, tt := range tests {
		got := GSTFromInclusive(decimal.RequireFromString(tt.gross))
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("GSTFromInclusive(%s) = %s, want %s", tt.gross, got, tt.want)
		}
	}
}

// Adding GST to a net amount and extracting it back must agree to the cent.
func TestGSTRoundTrip(t *testing.T) {
	for _, net := range []string{"1", "99.99", "123.45", "1000", "8675.31"} {
		n := decimal.RequireFromString(net)
		gst := GSTFromExclusive(n)
		gross := n.Add(gst)
		back := GSTFromInclusive(gross)
		if !decimalClose(gst, back, 0.01) {
			t.Errorf("round trip for net %s: added %s, extracted %s", net, gst, back)
		}
	}
}
