package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taxbook/internal/money"
	"taxbook/internal/tax"
	"taxbook/models"
)

type EarningController struct {
	DB        *gorm.DB
	UploadDir string
}

func (ctl EarningController) bind(c *gin.Context, e *models.Earning) error {
	amount, err := money.ParseNonNegative(c.PostForm("amount"))
	if err != nil {
		return &models.ValidationError{Field: "amount", Message: err.Error()}
	}
	date, err := parseDate(c.PostForm("date"))
	if err != nil {
		return &models.ValidationError{Field: "date", Message: err.Error()}
	}
	e.Description = c.PostForm("description")
	e.Reference = c.PostForm("reference")
	e.Amount = amount
	e.Date = date
	return e.Validate()
}

func (ctl EarningController) Create(c *gin.Context) {
	var e models.Earning
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

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		fy, err := getOrCreateYear(tx, tax.YearFor(e.Date))
		if err != nil {
			return err
		}
		e.FinancialYearID = fy.ID
		return tx.Create(&e).Error
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (ctl EarningController) Get(c *gin.Context) {
	var e models.Earning
	if err := ctl.DB.First(&e, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, errors.New("earning not found"))
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (ctl EarningController) Update(c *gin.Context) {
	var e models.Earning
	if err := ctl.DB.First(&e, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, errors.New("earning not found"))
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
		fy, err := getOrCreateYear(tx, tax.YearFor(e.Date))
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

func (ctl EarningController) Delete(c *gin.Context) {
	res := ctl.DB.Delete(&models.Earning{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		respondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, errors.New("earning not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
