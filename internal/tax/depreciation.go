package tax

import "github.com/shopspring/decimal"

// depreciationFloor is the purchase price above which a capital good starts
// depreciating instead of being expensed outright.
var depreciationFloor = decimal.NewFromInt(500)

// ScheduleEntry is one financial year of a depreciation schedule.
type ScheduleEntry struct {
	Year         int
	CurrentValue decimal.Decimal
	TaxWriteOff  decimal.Decimal
	YearsToZero  int
}

// Depreciates reports whether an expense qualifies for a depreciation
// schedule: it must be a capital good costing more than $500.
func Depreciates(isGood bool, amount decimal.Decimal) bool {
	return isGood && amount.GreaterThan(depreciationFloor)
}

// DepreciationYears returns how many years an asset depreciates over, from
// its purchase price. The span is a function of asset size, not of the
// depreciation rate; a rate-based span (100/rate years) was considered and
// rejected because it ignores asset size and degenerates for small rates.
func DepreciationYears(amount decimal.Decimal) int {
	switch {
	case amount.LessThan(decimal.NewFromInt(500)):
		return 0
	case amount.LessThan(decimal.NewFromInt(1000)):
		return 5
	case amount.LessThan(decimal.NewFromInt(5000)):
		return 10
	default:
		return 15
	}
}

// Schedule builds the full depreciation schedule for a capital good bought
// in startYear. The write-off is flat: amount x rate/100 every year, with
// the book value held at amount minus one write-off. It is generated once at
// purchase time and never recalculated. Returns nil for amounts at or below
// the $500 floor.
func Schedule(amount decimal.Decimal, ratePct float64, startYear int) []ScheduleEntry {
	if !amount.GreaterThan(depreciationFloor) {
		return nil
	}
	years := DepreciationYears(amount)
	if years == 0 || ratePct <= 0 {
		return nil
	}
	writeOff := amount.Mul(decimal.NewFromFloat(ratePct)).Div(decimal.NewFromInt(100)).Round(2)
	current := amount.Sub(writeOff)

	entries := make([]ScheduleEntry, 0, years)
	for y := startYear; y < startYear+years; y++ {
		entries = append(entries, ScheduleEntry{
			Year:         y,
			CurrentValue: current,
			TaxWriteOff:  writeOff,
			YearsToZero:  years - (y - startYear),
		})
	}
	return entries
}
