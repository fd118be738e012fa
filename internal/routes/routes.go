package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Gin freezes each route's handler chain at registration, so global
	// middleware has to be attached before any group is mounted.
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	TripRoutes(r)
	DriverRoutes(r)
	UnitRoutes(r)
	DashboardRoutes(r)
	SettingsRoutes(r)
	WebSocketRoutes(r)

	return r
}
