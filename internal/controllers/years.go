package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taxbook/models"
)

type YearController struct {
	DB *gorm.DB
}

func (ctl YearController) List(c *gin.Context) {
	var years []models.FinancialYear
	if err := ctl.DB.Order("year DESC").Find(&years).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, years)
}

// Get returns one financial year's records and assessment. Unlike the
// dashboard it never creates the year.
func (ctl YearController) Get(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		respondError(c, http.StatusBadRequest, errors.New("year must be an integer"))
		return
	}
	var fy models.FinancialYear
	if err := ctl.DB.First(&fy, "year = ?", year).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, errors.New("financial year not found"))
			return
		}
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
