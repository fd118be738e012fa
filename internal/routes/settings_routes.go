package routes

import (
	"github.com/gin-gonic/gin"

	"trucker_profit/internal/controllers"
	"trucker_profit/internal/middleware"
	"trucker_profit/internal/models"
)

func SettingsRoutes(r *gin.Engine) {
	settings := r.Group("/settings")
	settings.Use(middleware.RequireAuthWithRole(models.RoleOwner))
	{
		settings.GET("/", controllers.GetSettings)
		settings.PUT("/primary-currency", controllers.SetPrimaryCurrency)
		settings.PUT("/exchange-rate", controllers.SetExchangeRate)
		settings.POST("/rate/refresh", controllers.RefreshRate)
	}
}
