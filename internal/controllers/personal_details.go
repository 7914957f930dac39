package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taxbook/internal/money"
	"taxbook/models"
)

type PersonalDetailsController struct {
	DB *gorm.DB
}

func (ctl PersonalDetailsController) bind(c *gin.Context, p *models.PersonalDetails) error {
	p.GSTRegistered = c.PostForm("gstRegistered") == "true" || c.PostForm("gstRegistered") == "1" || c.PostForm("gstRegistered") == "on"
	p.FirstName = c.PostForm("firstName")
	p.LastName = c.PostForm("lastName")
	p.Email = c.PostForm("email")
	p.Phone = c.PostForm("phone")
	if len(p.Phone) > 15 {
		return &models.ValidationError{Field: "phone", Message: "phone must be 15 characters or fewer"}
	}
	if v := strings.TrimSpace(c.PostForm("permanentIncome")); v != "" {
		income, err := money.ParseNonNegative(v)
		if err != nil {
			return &models.ValidationError{Field: "permanentIncome", Message: err.Error()}
		}
		p.PermanentIncome = income
	}
	return nil
}

// Get returns the singleton row, creating a zeroed one if none exists yet
// so tax computation always has a baseline to work from.
func (ctl PersonalDetailsController) Get(c *gin.Context) {
	var p models.PersonalDetails
	if err := ctl.DB.FirstOrCreate(&p).Error; err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create inserts the one and only personal-details row. A second attempt is
// rejected with 409.
func (ctl PersonalDetailsController) Create(c *gin.Context) {
	var p models.PersonalDetails
	if err := ctl.bind(c, &p); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := ctl.DB.Create(&p).Error; err != nil {
		if errors.Is(err, models.ErrPersonalDetailsExists) {
			respondError(c, http.StatusConflict, err)
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Update edits the singleton, creating it first if it never existed.
func (ctl PersonalDetailsController) Update(c *gin.Context) {
	var p models.PersonalDetails
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.FirstOrCreate(&p).Error; err != nil {
			return err
		}
		if err := ctl.bind(c, &p); err != nil {
			return err
		}
		return tx.Save(&p).Error
	})
	if err != nil {
		if _, ok := models.IsValidation(err); ok {
			respondError(c, http.StatusBadRequest, err)
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
