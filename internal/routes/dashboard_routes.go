package routes

import (
	"github.com/gin-gonic/gin"

	"trucker_profit/internal/controllers"
	"trucker_profit/internal/middleware"
	"trucker_profit/internal/models"
)

func DashboardRoutes(r *gin.Engine) {
	dash := r.Group("/dashboard")
	{
		dash.GET("/owner", middleware.RequireAuthWithRole(models.RoleOwner), controllers.OwnerDashboard)
		dash.GET("/driver", middleware.RequireAuthWithRole(models.RoleDriver), controllers.DriverDashboard)
	}
}
