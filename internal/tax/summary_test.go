package tax

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSummarizeEmptyYear(t *testing.T) {
	s := Summarize(2024, decimal.Zero, decimal.Zero, decimal.Zero, false)
	for name, v := range map[string]decimal.Decimal{
		"totalEarnings":    s.TotalEarnings,
		"totalExpenses":    s.TotalExpenses,
		"taxOwedPermanent": s.TaxOwedPermanent,
		"taxOwedBusiness":  s.TaxOwedBusiness,
		"gstToPay":         s.GSTToPay,
		"gstToClaim":       s.GSTToClaim,
	} {
		if !v.IsZero() {
			t.Errorf("%s = %s, want 0", name, v)
		}
	}
}

func TestSummarizeRegistered(t *testing.T) {
	s := Summarize(2024,
		decimal.NewFromInt(1000),
		decimal.NewFromInt(200),
		decimal.NewFromInt(52000),
		true,
	)
	if want := decimal.RequireFromString("150"); !s.GSTToPay.Equal(want) {
		t.Errorf("gstToPay = %s, want %s", s.GSTToPay, want)
	}
	if want := decimal.RequireFromString("30"); !s.GSTToClaim.Equal(want) {
		t.Errorf("gstToClaim = %s, want %s", s.GSTToClaim, want)
	}
	// net business income 800, all inside the 10.5% bracket
	if want := decimal.RequireFromString("84"); !s.TaxOwedBusiness.Equal(want) {
		t.Errorf("taxOwedBusiness = %s, want %s", s.TaxOwedBusiness, want)
	}
	// permanent income assessed on its own bracket walk: 1470 + 34000*0.175 + 4000*0.30
	if want := decimal.RequireFromString("8620"); !s.TaxOwedPermanent.Equal(want) {
		t.Errorf("taxOwedPermanent = %s, want %s", s.TaxOwedPermanent, want)
	}
}

func TestSummarizeUnregisteredHasNoGST(t *testing.T) {
	s := Summarize(2024, decimal.NewFromInt(1000), decimal.NewFromInt(200), decimal.Zero, false)
	if !s.GSTToPay.IsZero() || !s.GSTToClaim.IsZero() {
		t.Errorf("unregistered operator owes no GST, got pay=%s claim=%s", s.GSTToPay, s.GSTToClaim)
	}
}

func TestSummarizeNegativeBusinessIncome(t *testing.T) {
	s := Summarize(2024, decimal.NewFromInt(100), decimal.NewFromInt(500), decimal.Zero, false)
	if !s.TaxOwedBusiness.IsZero() {
		t.Errorf("taxOwedBusiness = %s, want 0 for a loss-making year", s.TaxOwedBusiness)
	}
}
