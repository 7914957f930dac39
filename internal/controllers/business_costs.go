package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"taxbook/internal/money"
	"taxbook/internal/tax"
	"taxbook/models"
)

type BusinessCostController struct {
	DB *gorm.DB
}

func (ctl BusinessCostController) Create(c *gin.Context) {
	amount, err := money.Parse(c.PostForm("amount"))
	if err != nil {
		respondError(c, http.StatusBadRequest, &models.ValidationError{Field: "amount", Message: err.Error()})
		return
	}
	date, err := parseDate(c.PostForm("date"))
	if err != nil {
		respondError(c, http.StatusBadRequest, &models.ValidationError{Field: "date", Message: err.Error()})
		return
	}
	rate := decimal.Zero
	if v := c.PostForm("depreciationRate"); v != "" {
		rate, err = money.ParseNonNegative(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, &models.ValidationError{Field: "depreciationRate", Message: err.Error()})
			return
		}
	}
	cost := models.BusinessCost{
		Description:      c.PostForm("description"),
		Amount:           amount,
		Date:             date,
		DepreciationRate: rate,
	}
	if err := cost.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		fy, err := getOrCreateYear(tx, tax.YearFor(cost.Date))
		if err != nil {
			return err
		}
		cost.FinancialYearID = fy.ID
		return tx.Create(&cost).Error
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, cost)
}

func (ctl BusinessCostController) List(c *gin.Context) {
	q := ctl.DB.Model(&models.BusinessCost{}).Order("date DESC")
	if v := c.Query("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, errors.New("year must be an integer"))
			return
		}
		q = q.Joins("JOIN financial_years ON financial_years.id = business_costs.financial_year_id").
			Where("financial_years.year = ?", year)
	}
	var costs []models.BusinessCost
	if err := q.Find(&costs).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, costs)
}

func (ctl BusinessCostController) Delete(c *gin.Context) {
	res := ctl.DB.Delete(&models.BusinessCost{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		respondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, errors.New("business cost not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
