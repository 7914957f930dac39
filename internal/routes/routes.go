package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taxbook/internal/config"
	"taxbook/internal/controllers"
)

func Register(db *gorm.DB, cfg config.Config) *gin.Engine {
	earn := controllers.EarningController{DB: db, UploadDir: cfg.UploadDir}
	exp := controllers.ExpenseController{DB: db, UploadDir: cfg.UploadDir}
	costs := controllers.BusinessCostController{DB: db}
	details := controllers.PersonalDetailsController{DB: db}
	dash := controllers.DashboardController{DB: db}
	years := controllers.YearController{DB: db}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
	}))
	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api/v1")

	api.GET("/dashboard", dash.Get)
	api.GET("/dashboard/pdf", dash.GetPDF)

	api.POST("/earnings", earn.Create)
	api.GET("/earnings/:id", earn.Get)
	api.PUT("/earnings/:id", earn.Update)
	api.DELETE("/earnings/:id", earn.Delete)

	api.POST("/expenses", exp.Create)
	api.GET("/expenses/:id", exp.Get)
	api.PUT("/expenses/:id", exp.Update)
	api.DELETE("/expenses/:id", exp.Delete)

	api.POST("/business-costs", costs.Create)
	api.GET("/business-costs", costs.List)
	api.DELETE("/business-costs/:id", costs.Delete)

	api.GET("/years", years.List)
	api.GET("/years/:year", years.Get)

	api.GET("/personal-details", details.Get)
	api.POST("/personal-details", details.Create)
	api.PUT("/personal-details", details.Update)

	return r
}
