package models

// FinancialYear is the aggregation root for one NZ financial year
// (1 April - 31 March), identified by the calendar year the period starts
// in. Rows are created lazily the first time a record is dated into the
// year or the dashboard loads it; deleting one cascades to everything it
// owns.
type FinancialYear struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Year          int            `json:"year" gorm:"uniqueIndex;not null"`
	Earnings      []Earning      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Expenses      []Expense      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	BusinessCosts []BusinessCost `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Depreciations []Depreciation `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
