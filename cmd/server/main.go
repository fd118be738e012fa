package main

import (
	"log"
	"net/http"
	"os"

	"trucker_profit/internal/config"
	"trucker_profit/internal/logger"
	"trucker_profit/internal/middleware"
	"trucker_profit/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database and seed the settings singleton
	config.InitDB()

	// Owner credentials and the live exchange rate provider
	config.InitAdmin()
	config.InitRates()

	// Setup Gin router (recovery + request logging attached inside)
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running at :" + port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+port, handler))
}
