package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taxbook/internal/money"
	"taxbook/internal/tax"
	"taxbook/models"
)

type ExpenseController struct {
	DB        *gorm.DB
	UploadDir string
}

// depreciationRow is a schedule row joined with the year it lands in.
type depreciationRow struct {
	models.Depreciation
	Year int `json:"year"`
}

func (ctl ExpenseController) bind(c *gin.Context, e *models.Expense) error {
	amount, err := money.Parse(c.PostForm("amount"))
	if err != nil {
		return &models.ValidationError{Field: "amount", Message: err.Error()}
	}
	date, err := parseDate(c.PostForm("purchaseDate"))
	if err != nil {
		return &models.ValidationError{Field: "purchaseDate", Message: err.Error()}
	}
	e.Description = c.PostForm("description")
	e.Reference = c.PostForm("reference")
	e.Amount = amount
	e.PurchaseDate = date
	e.ExpenseType = c.PostForm("expenseType")
	switch c.PostForm("isGood") {
	case "true", "1", "on":
		e.IsGood = true
	default:
		e.IsGood = false
	}
	e.DepreciationRate = nil
	if v := c.PostForm("depreciationRate"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return &models.ValidationError{Field: "depreciationRate", Message: "depreciation rate must be a number"}
		}
		e.DepreciationRate = &rate
	}
	return e.Validate()
}

func (ctl ExpenseController) Create(c *gin.Context) {
	var e models.Expense
	if err := ctl.bind(c, &e); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	path, err := saveAttachment(c, ctl.UploadDir)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	e.Attachment = path
	e.FreezeGST()

	// The expense, any missing financial years and the whole depreciation
	// schedule commit together or not at all; a partial schedule is data
	// corruption.
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		fy, err := getOrCreateYear(tx, tax.YearFor(e.PurchaseDate))
		if err != nil {
			return err
		}
		e.FinancialYearID = fy.ID
		if err := tx.Create(&e).Error; err != nil {
			return err
		}
		if !e.ShouldDepreciate() {
			return nil
		}
		entries := tax.Schedule(e.Amount, *e.DepreciationRate, tax.YearFor(e.PurchaseDate))
		for _, entry := range entries {
			yfy, err := getOrCreateYear(tx, entry.Year)
			if err != nil {
				return err
			}
			d := models.Depreciation{
				ExpenseID:       e.ID,
				FinancialYearID: yfy.ID,
				CurrentValue:    entry.CurrentValue,
				TaxWriteOff:     entry.TaxWriteOff,
				YearsToZero:     entry.YearsToZero,
			}
			if err := tx.Create(&d).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (ctl ExpenseController) Get(c *gin.Context) {
	var e models.Expense
	if err := ctl.DB.First(&e, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, errors.New("expense not found"))
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	var schedule []depreciationRow
	err := ctl.DB.Model(&models.Depreciation{}).
		Select("depreciations.*, financial_years.year AS year").
		Joins("JOIN financial_years ON financial_years.id = depreciations.financial_year_id").
		Where("depreciations.expense_id = ?", e.ID).
		Order("financial_years.year").
		Scan(&schedule).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expense": e, "depreciation": schedule})
}

// Update edits the expense record only. An existing depreciation schedule
// is not regenerated; it was fixed at creation time.
func (ctl ExpenseController) Update(c *gin.Context) {
	var e models.Expense
	if err := ctl.DB.First(&e, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, errors.New("expense not found"))
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := ctl.bind(c, &e); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if path, err := saveAttachment(c, ctl.UploadDir); err == nil && path != "" {
		e.Attachment = path
	}
	e.FreezeGST()

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		fy, err := getOrCreateYear(tx, tax.YearFor(e.PurchaseDate))
		if err != nil {
			return err
		}
		e.FinancialYearID = fy.ID
		return tx.Save(&e).Error
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (ctl ExpenseController) Delete(c *gin.Context) {
	res := ctl.DB.Delete(&models.Expense{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		respondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, errors.New("expense not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
