package models

import "github.com/shopspring/decimal"

// Depreciation is one year of a capital good's depreciation schedule: the
// book value, the write-off claimable that year and how many years remain
// until the value reaches zero. The whole schedule is written in a single
// batch when the qualifying expense is created and is never recalculated.
type Depreciation struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	ExpenseID       uint            `json:"expenseId" gorm:"index;not null"`
	Expense         *Expense        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	FinancialYearID uint            `json:"financialYearId" gorm:"index;not null"`
	FinancialYear   *FinancialYear  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CurrentValue    decimal.Decimal `json:"currentValue" gorm:"type:decimal(10,2);not null"`
	TaxWriteOff     decimal.Decimal `json:"taxWriteOff" gorm:"type:decimal(10,2);not null"`
	YearsToZero     int             `json:"yearsToZero" gorm:"not null"`
}
