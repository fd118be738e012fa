package routes

import (
	"github.com/gin-gonic/gin"

	"trucker_profit/internal/controllers"
	"trucker_profit/internal/middleware"
	"trucker_profit/internal/models"
)

func UnitRoutes(r *gin.Engine) {
	owner := r.Group("/units")
	owner.Use(middleware.RequireAuthWithRole(models.RoleOwner))
	{
		owner.POST("/", controllers.CreateUnit)
		owner.GET("/", controllers.ListUnits)
		owner.POST("/:id/expenses", controllers.AddUnitExpense)
	}

	shared := r.Group("/units")
	shared.Use(middleware.RequireAuth())
	{
		shared.GET("/:id", controllers.GetUnit)
	}
}
