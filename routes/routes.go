package routes

import (
	"github.com/Dacosmicgiant/calorie-tracker/controllers"
	"github.com/Dacosmicgiant/calorie-tracker/logger"
	"github.com/Dacosmicgiant/calorie-tracker/middlewares"
	"github.com/Dacosmicgiant/calorie-tracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, log *logger.Logger) *gin.Engine {
	r := gin.Default()

	authCtl := controllers.NewAuthController(services.NewAuthService(db), log)
	profileCtl := controllers.NewProfileController(services.NewUserService(db), log)
	entryCtl := controllers.NewEntryController(services.NewEntryService(db), log)
	foodCtl := controllers.NewFoodController(services.NewFoodService(db), log)
	reportCtl := controllers.NewReportController(services.NewReportService(db), log)
	healthCtl := controllers.NewHealthController()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware(db))
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", profileCtl.Get)
			user.PUT("/profile", profileCtl.Update)
		}

		entries := protected.Group("/entries")
		{
			entries.POST("", entryCtl.Create)
			entries.GET("", entryCtl.History)
			entries.GET("/:id", entryCtl.Get)
			entries.PUT("/:id", entryCtl.Update)
			entries.DELETE("/:id", entryCtl.Delete)
		}

		food := protected.Group("/food")
		{
			food.GET("/search", foodCtl.Search)
			food.GET("", foodCtl.List)
			food.POST("", foodCtl.Create)
			food.DELETE("/:id", foodCtl.Delete)
		}

		reports := protected.Group("/reports")
		{
			reports.GET("/dashboard", reportCtl.Dashboard)
			reports.GET("/daily", reportCtl.Daily)
			reports.GET("/weekly", reportCtl.Weekly)
			reports.GET("/monthly", reportCtl.Monthly)
			reports.GET("/streak", reportCtl.Streak)
		}

		health := protected.Group("/health")
		{
			health.GET("/bmi", healthCtl.BMI)
			health.POST("/recommendation", healthCtl.Recommendation)
		}
	}

	return r
}
