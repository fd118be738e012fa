package routes

import (
	"github.com/gin-gonic/gin"

	"trucker_profit/internal/controllers"
)

func WebSocketRoutes(r *gin.Engine) {
	ws := r.Group("/ws")
	{
		// Token arrives as a query parameter; validated inside the handler
		ws.GET("/dashboard", controllers.DashboardWebSocket)
	}
}
