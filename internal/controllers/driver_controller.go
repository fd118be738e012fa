package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"trucker_profit/internal/config"
	"trucker_profit/internal/finance"
	"trucker_profit/internal/middleware"
	"trucker_profit/internal/models"
)

type createDriverInput struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	Phone          string `json:"phone"`
	IDNumber       string `json:"id_number"`
	DrivingLicense string `json:"driving_license"`
}

// updateDriverInput defines the fields the owner can change on a driver.
// Pointers distinguish "not sent" from "set to empty".
type updateDriverInput struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Password       *string `json:"password"`
	Phone          *string `json:"phone"`
	IDNumber       *string `json:"id_number"`
	DrivingLicense *string `json:"driving_license"`
}

// CreateDriver registers a new driver account - OWNER ONLY.
func CreateDriver(c *gin.Context) {
	var input createDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(input.FirstName + " " + input.LastName)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	driver := models.Driver{
		Name:           name,
		Email:          email,
		PasswordHash:   string(hash),
		Phone:          strings.TrimSpace(input.Phone),
		IDNumber:       strings.TrimSpace(input.IDNumber),
		DrivingLicense: strings.TrimSpace(input.DrivingLicense),
	}
	if err := config.DB.Create(&driver).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "a driver with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create driver: " + err.Error()})
		return
	}

	logrus.WithField("email", email).Info("New driver created")
	c.JSON(http.StatusCreated, gin.H{"driver": driver})
}

// ListDrivers lists all drivers with their trip counts - OWNER ONLY.
func ListDrivers(c *gin.Context) {
	var drivers []models.Driver
	if err := config.DB.Find(&drivers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing drivers: " + err.Error()})
		return
	}

	data := make([]gin.H, 0, len(drivers))
	for _, d := range drivers {
		var tripCount int64
		config.DB.Model(&models.Trip{}).Where("driver_id = ?", d.ID).Count(&tripCount)
		data = append(data, gin.H{
			"driver":      d,
			"trips_count": tripCount,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

// GetDriver returns a driver profile with per-trip financials - LOGIN REQUIRED.
// Drivers may only view their own profile; the owner may view anyone's.
func GetDriver(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver ID format."})
		return
	}

	actorID, role := middleware.ActorFromContext(c)
	if role == models.RoleDriver && actorID != uint(id) {
		logrus.WithFields(logrus.Fields{"actor": actorID, "target": id}).Warn("Driver tried to view another driver's profile")
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to view this profile."})
		return
	}

	var driver models.Driver
	if err := config.DB.First(&driver, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	var driverTrips []models.Trip
	if err := config.DB.Preload("Expenses").Where("driver_id = ?", driver.ID).Find(&driverTrips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading trips: " + err.Error()})
		return
	}

	// One live-rate snapshot for the whole profile
	settings := currentSettings()
	liveRate := config.Rates.CurrentRate()

	tripsDisplay := make([]gin.H, 0, len(driverTrips))
	for _, t := range driverTrips {
		s := finance.SummarizeTrip(t, liveRate, settings.PrimaryCurrency)
		tripsDisplay = append(tripsDisplay, gin.H{
			"id":            t.ID,
			"trip_number":   t.TripNumber,
			"pickup_date":   t.PickupDate,
			"delivery_date": t.DeliveryDate,
			"route":         t.PickupCity + " → " + t.DeliveryCity,
			"status":        t.Status,
			"revenue":       s.Revenue,
			"expenses":      s.Expenses,
			"profit":        s.Profit,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"driver":           driver,
		"total_trips":      len(driverTrips),
		"revenue_primary":  finance.TripRevenue(driverTrips, liveRate, settings.PrimaryCurrency),
		"trips":            tripsDisplay,
		"primary_currency": settings.PrimaryCurrency,
	})
}

// UpdateDriver modifies driver details - OWNER ONLY.
func UpdateDriver(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver ID format."})
		return
	}

	var driver models.Driver
	if err := config.DB.First(&driver, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	var input updateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if input.Name != nil {
		driver.Name = *input.Name
	}
	if input.Email != nil {
		driver.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Password != nil {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password."})
			return
		}
		driver.PasswordHash = string(hash)
	}
	if input.Phone != nil {
		driver.Phone = *input.Phone
	}
	if input.IDNumber != nil {
		driver.IDNumber = *input.IDNumber
	}
	if input.DrivingLicense != nil {
		driver.DrivingLicense = *input.DrivingLicense
	}

	if err := config.DB.Save(&driver).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "a driver with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update driver: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Driver details updated successfully.",
		"driver":  driver,
	})
}
