package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"taxbook/internal/pdf"
	"taxbook/internal/tax"
	"taxbook/models"
)

type DashboardController struct {
	DB *gorm.DB
}

// yearTotals sums a money column over one financial year. Missing rows sum
// to zero, never null.
func yearTotals(db *gorm.DB, fyID uint) (earnings, expenses decimal.Decimal, err error) {
	err = db.Model(&models.Earning{}).
		Where("financial_year_id = ?", fyID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&earnings).Error
	if err != nil {
		return
	}
	err = db.Model(&models.Expense{}).
		Where("financial_year_id = ?", fyID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&expenses).Error
	return
}

// summarize loads the singleton personal details (creating the zeroed
// default if missing), sums the year and runs the assessment.
func summarize(db *gorm.DB, fy models.FinancialYear) (tax.Summary, models.PersonalDetails, error) {
	var p models.PersonalDetails
	if err := db.FirstOrCreate(&p).Error; err != nil {
		return tax.Summary{}, p, err
	}
	totalEarnings, totalExpenses, err := yearTotals(db, fy.ID)
	if err != nil {
		return tax.Summary{}, p, err
	}
	s := tax.Summarize(fy.Year, totalEarnings, totalExpenses, p.PermanentIncome, p.GSTRegistered)
	return s, p, nil
}

// Get renders the dashboard for the financial year the current date falls
// in, creating the year row on first view.
func (ctl DashboardController) Get(c *gin.Context) {
	fy, err := getOrCreateYear(ctl.DB, tax.YearFor(time.Now()))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	summary, details, err := summarize(ctl.DB, fy)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	var earnings []models.Earning
	if err := ctl.DB.Where("financial_year_id = ?", fy.ID).Order("date DESC").Find(&earnings).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	var expenses []models.Expense
	if err := ctl.DB.Where("financial_year_id = ?", fy.ID).Order("purchase_date DESC").Find(&expenses).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary":         summary,
		"earnings":        earnings,
		"expenses":        expenses,
		"personalDetails": details,
	})
}

// GetPDF renders the same summary as a printable PDF.
func (ctl DashboardController) GetPDF(c *gin.Context) {
	fy, err := getOrCreateYear(ctl.DB, tax.YearFor(time.Now()))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	summary, details, err := summarize(ctl.DB, fy)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	operator := details.FirstName + " " + details.LastName
	out, err := pdf.Summary(summary, operator, details.GSTRegistered)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="dashboard.pdf"`)
	c.Data(http.StatusOK, "application/pdf", out)
}
