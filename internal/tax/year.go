package tax

import "time"

// YearFor returns the financial year a date falls into. NZ financial years
// run 1 April to 31 March and are identified by the calendar year the period
// starts in, so 31 March 2024 belongs to financial year 2023.
func YearFor(t time.Time) int {
	if t.Month() >= time.April {
		return t.Year()
	}
	return t.Year() - 1
}

// YearRange returns the first and last day of a financial year.
func YearRange(year int) (start, end time.Time) {
	start = time.Date(year, time.April, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year+1, time.March, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}
