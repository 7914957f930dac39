package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"taxbook/internal/tax"
)

// Expense categories, fixed set.
const (
	ExpenseOfficeSupplies       = "office_supplies"
	ExpenseTravel               = "travel"
	ExpenseEquipment            = "equipment"
	ExpenseUtilities            = "utilities"
	ExpenseMarketing            = "marketing"
	ExpenseInsurance            = "insurance"
	ExpenseSalaries             = "salaries"
	ExpenseRent                 = "rent"
	ExpenseProfessionalServices = "professional_services"
)

// ExpenseTypes returns every valid expense category.
func ExpenseTypes() []string {
	return []string{
		ExpenseOfficeSupplies,
		ExpenseTravel,
		ExpenseEquipment,
		ExpenseUtilities,
		ExpenseMarketing,
		ExpenseInsurance,
		ExpenseSalaries,
		ExpenseRent,
		ExpenseProfessionalServices,
	}
}

// Expense is money paid out by the business. Amounts are entered as the
// GST-inclusive total on the receipt; the recoverable GST component is
// frozen at save time with the rate in force. A capital good (IsGood) over
// $500 with a depreciation rate gets a multi-year depreciation schedule
// generated once, at creation.
type Expense struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	Reference        string          `json:"reference" gorm:"type:varchar(20)"`
	Description      string          `json:"description" gorm:"type:varchar(255);not null"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	PurchaseDate     time.Time       `json:"purchaseDate" gorm:"type:date;not null"`
	ExpenseType      string          `json:"expenseType" gorm:"type:varchar(50);not null"`
	IsGood           bool            `json:"isGood" gorm:"not null;default:false"`
	DepreciationRate *float64        `json:"depreciationRate,omitempty"`
	Attachment       string          `json:"attachment,omitempty" gorm:"type:varchar(255)"`
	GST              decimal.Decimal `json:"gst" gorm:"type:decimal(10,2);not null"`
	GSTRate          decimal.Decimal `json:"gstRate" gorm:"type:decimal(4,2);not null"`
	FinancialYearID  uint            `json:"financialYearId" gorm:"index;not null"`
	FinancialYear    *FinancialYear  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	DeletedAt        gorm.DeletedAt  `json:"-" gorm:"index"`
}

func (e *Expense) Validate() error {
	if e.Description == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	if len(e.Reference) > 20 {
		return &ValidationError{Field: "reference", Message: "reference must be 20 characters or fewer"}
	}
	if e.PurchaseDate.IsZero() {
		return &ValidationError{Field: "purchaseDate", Message: "purchase date is required"}
	}
	valid := false
	for _, t := range ExpenseTypes() {
		if e.ExpenseType == t {
			valid = true
			break
		}
	}
	if !valid {
		return &ValidationError{Field: "expenseType", Message: "unknown expense type"}
	}
	if e.DepreciationRate != nil {
		if *e.DepreciationRate < 0 || *e.DepreciationRate > 100 {
			return &ValidationError{Field: "depreciationRate", Message: "depreciation rate must be between 0 and 100"}
		}
		if !tax.Depreciates(e.IsGood, e.Amount) {
			return &ValidationError{Field: "depreciationRate", Message: "depreciation only applies to capital goods over $500"}
		}
	}
	return nil
}

// ShouldDepreciate reports whether saving this expense must generate a
// depreciation schedule.
func (e *Expense) ShouldDepreciate() bool {
	return e.DepreciationRate != nil && tax.Depreciates(e.IsGood, e.Amount)
}

// FreezeGST computes and stores the GST component of the inclusive amount.
func (e *Expense) FreezeGST() {
	e.GST = tax.GSTFromInclusive(e.Amount)
	e.GSTRate = tax.GSTRate
}
