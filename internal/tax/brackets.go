package tax

import "github.com/shopspring/decimal"

// Bracket is one marginal income tax bracket. Upper of zero means no upper
// bound.
type Bracket struct {
	Lower decimal.Decimal
	Upper decimal.Decimal
	Rate  decimal.Decimal
}

// nzBrackets holds the New Zealand individual income tax rates as of 2023.
var nzBrackets = []Bracket{
	{Lower: decimal.NewFromInt(0), Upper: decimal.NewFromInt(14000), Rate: decimal.NewFromFloat(0.105)},
	{Lower: decimal.NewFromInt(14000), Upper: decimal.NewFromInt(48000), Rate: decimal.NewFromFloat(0.175)},
	{Lower: decimal.NewFromInt(48000), Upper: decimal.NewFromInt(70000), Rate: decimal.NewFromFloat(0.30)},
	{Lower: decimal.NewFromInt(70000), Upper: decimal.NewFromInt(180000), Rate: decimal.NewFromFloat(0.33)},
	{Lower: decimal.NewFromInt(180000), Rate: decimal.NewFromFloat(0.39)},
}

// Brackets returns the bracket table in ascending order.
func Brackets() []Bracket {
	return nzBrackets
}

// ComputeTax walks the bracket table and returns the tax owed on income.
// Each call is an independent walk starting at $0; callers assessing two
// income streams (permanent and business) invoke it once per stream and must
// not stack one on top of the other. Only the final total is rounded, to
// cents; bracket sums stay at full precision. Zero or negative income owes
// nothing.
func ComputeTax(income decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, b := range nzBrackets {
		if income.LessThanOrEqual(b.Lower) {
			break
		}
		upper := income
		if !b.Upper.IsZero() && upper.GreaterThan(b.Upper) {
			upper = b.Upper
		}
		total = total.Add(upper.Sub(b.Lower).Mul(b.Rate))
	}
	return total.Round(2)
}
