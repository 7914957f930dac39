package tax

import "github.com/shopspring/decimal"

// Summary is the assessment for one financial year.
//
// TaxOwedPermanent and TaxOwedBusiness come from two independent bracket
// walks over the operator's permanent income and the year's net business
// income. GSTToPay and GSTToClaim are top-line estimates over the year's
// totals; they are independent of the GST frozen on individual records and
// the two can drift apart, which is accepted.
type Summary struct {
	Year             int             `json:"year"`
	TotalEarnings    decimal.Decimal `json:"totalEarnings"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	TaxOwedPermanent decimal.Decimal `json:"taxOwedPermanentIncome"`
	TaxOwedBusiness  decimal.Decimal `json:"taxOwedBusinessIncome"`
	GSTToPay         decimal.Decimal `json:"gstToPay"`
	GSTToClaim       decimal.Decimal `json:"gstToClaim"`
}

// Summarize computes the year's tax position from its earning and expense
// totals. Net business income is earnings minus all expenses for the year
// and may go negative, in which case the business stream owes nothing.
func Summarize(year int, totalEarnings, totalExpenses, permanentIncome decimal.Decimal, gstRegistered bool) Summary {
	s := Summary{
		Year:             year,
		TotalEarnings:    totalEarnings,
		TotalExpenses:    totalExpenses,
		TaxOwedPermanent: ComputeTax(permanentIncome),
		TaxOwedBusiness:  ComputeTax(totalEarnings.Sub(totalExpenses)),
		GSTToPay:         decimal.Zero,
		GSTToClaim:       decimal.Zero,
	}
	if gstRegistered {
		s.GSTToPay = GSTFromExclusive(totalEarnings)
		s.GSTToClaim = GSTFromExclusive(totalExpenses)
	}
	return s
}
