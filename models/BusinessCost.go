package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BusinessCost is a cost that fits neither earnings nor categorised
// expenses. It carries its own depreciation rate but never generates a
// schedule.
type BusinessCost struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	Description      string          `json:"description" gorm:"type:varchar(255);not null"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date             time.Time       `json:"date" gorm:"type:date;not null"`
	DepreciationRate decimal.Decimal `json:"depreciationRate" gorm:"type:decimal(5,2)"`
	FinancialYearID  uint            `json:"financialYearId" gorm:"index;not null"`
	FinancialYear    *FinancialYear  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	DeletedAt        gorm.DeletedAt  `json:"-" gorm:"index"`
}

func (b *BusinessCost) Validate() error {
	if b.Description == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	if b.Date.IsZero() {
		return &ValidationError{Field: "date", Message: "date is required"}
	}
	return nil
}
