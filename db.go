package main

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taxbook/internal/config"
	"taxbook/internal/tax"
	"taxbook/models"
)

func initDB(cfg config.Config) *gorm.DB {
	db, err := gorm.Open(mysql.Open(cfg.MySQLDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("get sql db: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("ping db: %v", err)
	}

	if err := migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if cfg.SeedDev {
		if err := seedDevData(db); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}
	return db
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.FinancialYear{},
		&models.PersonalDetails{},
		&models.Earning{},
		&models.Expense{},
		&models.BusinessCost{},
		&models.Depreciation{},
	)
}

func seedDevData(db *gorm.DB) error {
	var cnt int64
	if err := db.Model(&models.PersonalDetails{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		details := models.PersonalDetails{
			GSTRegistered:   true,
			FirstName:       "Jane",
			LastName:        "Doe",
			Email:           "jane@example.com",
			Phone:           "0271000762",
			PermanentIncome: decimal.NewFromInt(52000),
		}
		if err := db.Create(&details).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&models.Earning{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	now := time.Now()
	return db.Transaction(func(tx *gorm.DB) error {
		var fy models.FinancialYear
		if err := tx.Where(models.FinancialYear{Year: tax.YearFor(now)}).FirstOrCreate(&fy).Error; err != nil {
			return err
		}

		earnings := []models.Earning{
			{Description: "Consulting invoice", Reference: "INV-1001", Amount: decimal.NewFromInt(4500), Date: now.AddDate(0, -2, 0), FinancialYearID: fy.ID},
			{Description: "Workshop fee", Reference: "INV-1002", Amount: decimal.NewFromFloat(850.50), Date: now.AddDate(0, -1, 0), FinancialYearID: fy.ID},
		}
		for i := range earnings {
			earnings[i].FreezeGST()
			if err := tx.Create(&earnings[i]).Error; err != nil {
				return err
			}
		}

		rate := 10.0
		laptop := models.Expense{
			Description:      "Laptop",
			Reference:        "EXP-2001",
			Amount:           decimal.NewFromInt(2300),
			PurchaseDate:     now.AddDate(0, -1, -5),
			ExpenseType:      models.ExpenseEquipment,
			IsGood:           true,
			DepreciationRate: &rate,
			FinancialYearID:  fy.ID,
		}
		laptop.FreezeGST()
		if err := tx.Create(&laptop).Error; err != nil {
			return err
		}
		for _, entry := range tax.Schedule(laptop.Amount, rate, tax.YearFor(laptop.PurchaseDate)) {
			var yfy models.FinancialYear
			if err := tx.Where(models.FinancialYear{Year: entry.Year}).FirstOrCreate(&yfy).Error; err != nil {
				return err
			}
			d := models.Depreciation{
				ExpenseID:       laptop.ID,
				FinancialYearID: yfy.ID,
				CurrentValue:    entry.CurrentValue,
				TaxWriteOff:     entry.TaxWriteOff,
				YearsToZero:     entry.YearsToZero,
			}
			if err := tx.Create(&d).Error; err != nil {
				return err
			}
		}

		rent := models.Expense{
			Description:     "Office rent",
			Reference:       "EXP-2002",
			Amount:          decimal.NewFromInt(800),
			PurchaseDate:    now.AddDate(0, 0, -10),
			ExpenseType:     models.ExpenseRent,
			FinancialYearID: fy.ID,
		}
		rent.FreezeGST()
		return tx.Create(&rent).Error
	})
}
