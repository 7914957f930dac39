package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taxbook/models"
)

func respondError(c *gin.Context, status int, err error) {
	if ve, ok := models.IsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("date is required")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("unsupported date format, expected YYYY-MM-DD")
}

// getOrCreateYear finds or lazily creates the FinancialYear row for a year,
// inside whatever transaction tx belongs to.
func getOrCreateYear(tx *gorm.DB, year int) (models.FinancialYear, error) {
	var fy models.FinancialYear
	err := tx.Where(models.FinancialYear{Year: year}).FirstOrCreate(&fy).Error
	return fy, err
}

// saveAttachment stores an uploaded "attachment" file under dir and returns
// the stored path. Requests without a file (or without a multipart body at
// all) are fine and return an empty path.
func saveAttachment(c *gin.Context, dir string) (string, error) {
	file, err := c.FormFile("attachment")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", err
	}
	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	dst := filepath.Join(dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}
