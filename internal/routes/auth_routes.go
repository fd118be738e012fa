package routes

import (
	"github.com/gin-gonic/gin"

	"trucker_profit/internal/controllers"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.LoginUser)
	}
}
