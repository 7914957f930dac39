package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PersonalDetails is the operator's global configuration: GST registration,
// contact fields and the permanent (non-business) income used as the
// baseline of every tax assessment. Exactly one row may exist; tax
// computation dereferences it unconditionally, so a zeroed default is
// created on first load rather than erroring.
type PersonalDetails struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	GSTRegistered   bool            `json:"gstRegistered" gorm:"not null;default:false"`
	FirstName       string          `json:"firstName" gorm:"type:varchar(100)"`
	LastName        string          `json:"lastName" gorm:"type:varchar(100)"`
	Email           string          `json:"email" gorm:"type:varchar(255)"`
	Phone           string          `json:"phone" gorm:"type:varchar(15)"`
	PermanentIncome decimal.Decimal `json:"permanentIncome" gorm:"type:decimal(10,2);not null;default:0"`
}

func (PersonalDetails) TableName() string { return "personal_details" }

// BeforeCreate enforces the singleton: the count check runs inside the same
// transaction as the insert, so two concurrent first-time setups cannot both
// succeed.
func (p *PersonalDetails) BeforeCreate(tx *gorm.DB) error {
	var n int64
	if err := tx.Model(&PersonalDetails{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrPersonalDetailsExists
	}
	return nil
}
