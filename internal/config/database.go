package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"trucker_profit/internal/exchange"
	"trucker_profit/internal/models"
)

var (
	// DB is the globally accessible database handle
	DB *gorm.DB
)

// InitDB initializes the database connection using environment variables,
// migrates the schema, and seeds the settings singleton on first boot.
func InitDB() {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	// Load environment variables (with defaults)
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "trucker_profit")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	// Build Data Source Name
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	// Open GORM connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Auto-migrate all models
	err = db.AutoMigrate(&models.Driver{}, &models.Unit{}, &models.Trip{}, &models.Expense{}, &models.Settings{})
	if err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	// Seed the settings singleton with defaults if it does not exist yet
	var count int64
	db.Model(&models.Settings{}).Count(&count)
	if count == 0 {
		if err := db.Create(&models.Settings{
			ExchangeRate:    exchange.FallbackRate,
			PrimaryCurrency: models.USD,
		}).Error; err != nil {
			log.Fatalf("could not seed settings: %v", err)
		}
	}

	// Assign to global
	DB = db
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

// GetDB returns the initialized DB handle
func GetDB() *gorm.DB {
	return DB
}
