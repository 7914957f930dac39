package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"taxbook/internal/tax"
)

// Earning is money received by the business. Amounts are entered exclusive
// of GST; the GST charged on top is frozen at save time together with the
// rate in force, so historical rows keep their figures if the rate ever
// changes.
type Earning struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Reference       string          `json:"reference" gorm:"type:varchar(20)"`
	Description     string          `json:"description" gorm:"type:varchar(255);not null"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date            time.Time       `json:"date" gorm:"type:date;not null"`
	Attachment      string          `json:"attachment,omitempty" gorm:"type:varchar(255)"`
	GST             decimal.Decimal `json:"gst" gorm:"type:decimal(10,2);not null"`
	GSTRate         decimal.Decimal `json:"gstRate" gorm:"type:decimal(4,2);not null"`
	FinancialYearID uint            `json:"financialYearId" gorm:"index;not null"`
	FinancialYear   *FinancialYear  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	DeletedAt       gorm.DeletedAt  `json:"-" gorm:"index"`
}

func (e *Earning) Validate() error {
	if e.Description == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	if e.Amount.IsNegative() {
		return &ValidationError{Field: "amount", Message: "amount must not be negative"}
	}
	if len(e.Reference) > 20 {
		return &ValidationError{Field: "reference", Message: "reference must be 20 characters or fewer"}
	}
	if e.Date.IsZero() {
		return &ValidationError{Field: "date", Message: "date is required"}
	}
	return nil
}

// FreezeGST computes and stores the GST charged on top of the amount.
func (e *Earning) FreezeGST() {
	e.GST = tax.GSTFromExclusive(e.Amount)
	e.GSTRate = tax.GSTRate
}
