package routes

import (
	"github.com/gin-gonic/gin"

	"trucker_profit/internal/controllers"
	"trucker_profit/internal/middleware"
	"trucker_profit/internal/models"
)

func TripRoutes(r *gin.Engine) {
	// Owner-only trip management
	owner := r.Group("/trips")
	owner.Use(middleware.RequireAuthWithRole(models.RoleOwner))
	{
		owner.POST("/", controllers.CreateTrip)
		owner.GET("/", controllers.ListTrips)
		owner.POST("/:id/complete", controllers.CompleteTrip)
	}

	// Trip detail and expenses are shared; the expense gate is enforced by
	// the lifecycle rules inside the handler, not by route role.
	shared := r.Group("/trips")
	shared.Use(middleware.RequireAuth())
	{
		shared.GET("/:id", controllers.GetTrip)
		shared.POST("/:id/expenses", controllers.AddTripExpense)
	}

	// Drivers complete their own assigned trips through a separate group
	driver := r.Group("/driver/trips")
	driver.Use(middleware.RequireAuthWithRole(models.RoleDriver))
	{
		driver.POST("/:id/complete", controllers.DriverCompleteTrip)
	}
}
