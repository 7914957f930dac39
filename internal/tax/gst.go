package tax

import "github.com/shopspring/decimal"

// GSTRate is the flat goods-and-services tax rate (15%).
var GSTRate = decimal.NewFromFloat(0.15)

var onePlusGST = decimal.NewFromInt(1).Add(GSTRate)

// GSTFromExclusive returns the GST to add on top of a GST-exclusive amount.
// Earnings are entered exclusive of GST, so this is the portion charged when
// invoicing.
func GSTFromExclusive(net decimal.Decimal) decimal.Decimal {
	return net.Mul(GSTRate).Round(2)
}

// GSTFromInclusive extracts the GST component from a GST-inclusive total.
// Expenses are entered as the full amount paid to a supplier, so this is the
// recoverable portion: gross - gross/1.15.
func GSTFromInclusive(gross decimal.Decimal) decimal.Decimal {
	return gross.Sub(gross.Div(onePlusGST)).Round(2)
}
