package routes

import (
	"github.com/gin-gonic/gin"

	"trucker_profit/internal/controllers"
	"trucker_profit/internal/middleware"
	"trucker_profit/internal/models"
)

func DriverRoutes(r *gin.Engine) {
	owner := r.Group("/drivers")
	owner.Use(middleware.RequireAuthWithRole(models.RoleOwner))
	{
		owner.POST("/", controllers.CreateDriver)
		owner.GET("/", controllers.ListDrivers)
		owner.PUT("/:id", controllers.UpdateDriver)
	}

	// Profile view is shared: drivers may see their own, the owner anyone's
	shared := r.Group("/drivers")
	shared.Use(middleware.RequireAuth())
	{
		shared.GET("/:id", controllers.GetDriver)
	}
}
