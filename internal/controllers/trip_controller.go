package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"trucker_profit/internal/config"
	"trucker_profit/internal/finance"
	"trucker_profit/internal/middleware"
	"trucker_profit/internal/models"
	"trucker_profit/internal/trips"
)

type createTripInput struct {
	TripNumber      string  `json:"trip_number"`
	DriverID        uint    `json:"driver_id"`
	UnitID          uint    `json:"unit_id"`
	PickupCity      string  `json:"pickup_city" binding:"required"`
	PickupDate      string  `json:"pickup_date"`
	DeliveryCity    string  `json:"delivery_city" binding:"required"`
	DeliveryDate    string  `json:"delivery_date"`
	PaymentAmount   float64 `json:"payment_amount"`
	PaymentCurrency string  `json:"payment_currency"`
}

// CreateTrip records a new trip - OWNER ONLY. Payments quoted in CAD are
// converted to the canonical USD figure at the manual settings rate.
func CreateTrip(c *gin.Context) {
	var input createTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := currentSettings()
	paymentUSD := finance.Convert(input.PaymentAmount, models.ParseCurrency(input.PaymentCurrency), settings.ExchangeRate, models.USD)

	tripNumber := strings.TrimSpace(input.TripNumber)
	if tripNumber == "" {
		tripNumber = "T" + time.Now().UTC().Format("200601021504")
	}

	trip := models.Trip{
		TripNumber:   tripNumber,
		PickupCity:   input.PickupCity,
		PickupDate:   input.PickupDate,
		DeliveryCity: input.DeliveryCity,
		DeliveryDate: input.DeliveryDate,
		PaymentUSD:   paymentUSD,
		Status:       models.TripActive,
	}
	if input.DriverID != 0 {
		id := input.DriverID
		trip.DriverID = &id
	}
	if input.UnitID != 0 {
		id := input.UnitID
		trip.UnitID = &id
	}

	if err := config.DB.Create(&trip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create trip: " + err.Error()})
		return
	}

	logrus.WithField("trip_number", trip.TripNumber).Info("Trip created")
	c.JSON(http.StatusCreated, gin.H{"trip": trip})
}

// ListTrips lists all trips with their financial summaries - OWNER ONLY.
func ListTrips(c *gin.Context) {
	var allTrips []models.Trip
	if err := config.DB.Preload("Expenses").Find(&allTrips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing trips: " + err.Error()})
		return
	}

	settings := currentSettings()
	liveRate := config.Rates.CurrentRate()
	drivers := driverNames()
	units := unitNumbers()

	data := make([]gin.H, 0, len(allTrips))
	for _, t := range allTrips {
		s := finance.SummarizeTrip(t, liveRate, settings.PrimaryCurrency)
		data = append(data, gin.H{
			"trip":        t,
			"driver_name": refName(t.DriverID, drivers),
			"unit_number": refName(t.UnitID, units),
			"summary":     s,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": data, "primary_currency": settings.PrimaryCurrency})
}

// GetTrip returns one trip with converted expense lines - LOGIN REQUIRED.
// Completed trips are valued at their locked rate, never the live one.
func GetTrip(c *gin.Context) {
	trip, ok := loadTrip(c)
	if !ok {
		return
	}

	actorID, role := middleware.ActorFromContext(c)
	settings := currentSettings()
	liveRate := config.Rates.CurrentRate()
	s := finance.SummarizeTrip(trip, liveRate, settings.PrimaryCurrency)

	expensesDisplay := make([]gin.H, 0, len(trip.Expenses))
	for _, e := range trip.Expenses {
		expensesDisplay = append(expensesDisplay, gin.H{
			"category":          e.Category,
			"description":       e.Description,
			"receipt":           e.Receipt,
			"original_amount":   e.Amount,
			"original_currency": e.Currency,
			"converted_amount":  finance.Convert(e.Amount, e.Currency, s.Rate, settings.PrimaryCurrency),
			"created_at":        e.CreatedAt,
		})
	}

	resp := gin.H{
		"trip":             trip,
		"expenses":         expensesDisplay,
		"summary":          s,
		"can_add_expense":  trips.CanAddExpense(trip, role, actorID, time.Now().UTC()),
		"is_owner":         role == models.RoleOwner,
		"primary_currency": settings.PrimaryCurrency,
		"current_rate":     liveRate,
	}
	if trip.ExchangeRateAt != nil {
		resp["locked_rate"] = *trip.ExchangeRateAt
	}
	c.JSON(http.StatusOK, resp)
}

// AddTripExpense appends an expense line to a trip - LOGIN REQUIRED.
// The lifecycle rules decide who may add and until when; expenses recorded in
// the post-completion grace window are valued at the locked rate like the
// rest of the trip.
func AddTripExpense(c *gin.Context) {
	trip, ok := loadTrip(c)
	if !ok {
		return
	}

	actorID, role := middleware.ActorFromContext(c)
	if !trips.CanAddExpense(trip, role, actorID, time.Now().UTC()) {
		logrus.WithFields(logrus.Fields{"actor": actorID, "trip": trip.ID}).Warn("Unauthorized expense add attempt")
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to add expenses to this trip at this time."})
		return
	}

	var input struct {
		Category    string  `json:"category" binding:"required"`
		Amount      float64 `json:"amount"`
		Currency    string  `json:"currency"`
		Description string  `json:"description"`
		Receipt     string  `json:"receipt"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense input: " + err.Error()})
		return
	}

	expense := models.Expense{
		TripID:      &trip.ID,
		Category:    strings.TrimSpace(input.Category),
		Amount:      input.Amount,
		Currency:    models.ParseCurrency(input.Currency),
		Description: strings.TrimSpace(input.Description),
		Receipt:     input.Receipt,
	}
	if err := config.DB.Create(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add expense: " + err.Error()})
		return
	}

	dashboardHub.Publish(TripEvent{
		Type:       "expense_added",
		TripID:     trip.ID,
		TripNumber: trip.TripNumber,
		Status:     trip.Status,
		At:         time.Now().UTC(),
	})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// CompleteTrip marks a trip completed and locks the live rate - OWNER ONLY.
func CompleteTrip(c *gin.Context) {
	trip, ok := loadTrip(c)
	if !ok {
		return
	}
	completeTrip(c, trip)
}

// DriverCompleteTrip lets the assigned driver complete their own trip.
func DriverCompleteTrip(c *gin.Context) {
	trip, ok := loadTrip(c)
	if !ok {
		return
	}

	actorID, _ := middleware.ActorFromContext(c)
	if !trip.AssignedTo(actorID) {
		logrus.WithFields(logrus.Fields{"actor": actorID, "trip": trip.ID}).Warn("Driver tried to complete a trip not assigned to them")
		c.JSON(http.StatusForbidden, gin.H{"error": "This trip is not assigned to you."})
		return
	}

	completeTrip(c, trip)
}

// completeTrip runs the lifecycle transition and persists status, completion
// time and locked rate in a single update, so no reader can observe a
// completed trip without its rate.
func completeTrip(c *gin.Context, trip models.Trip) {
	liveRate := config.Rates.CurrentRate()

	if err := trips.Complete(&trip, liveRate, time.Now().UTC()); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	update := map[string]interface{}{
		"status":           trip.Status,
		"completed_at":     trip.CompletedAt,
		"exchange_rate_at": trip.ExchangeRateAt,
	}
	if err := config.DB.Model(&models.Trip{}).Where("id = ?", trip.ID).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete trip: " + err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{"trip": trip.ID, "rate": liveRate}).Info("Trip completed, exchange rate locked")

	dashboardHub.Publish(TripEvent{
		Type:       "trip_completed",
		TripID:     trip.ID,
		TripNumber: trip.TripNumber,
		Status:     trip.Status,
		At:         time.Now().UTC(),
	})

	c.JSON(http.StatusOK, gin.H{
		"message":     "Trip marked as completed.",
		"locked_rate": liveRate,
		"trip":        trip,
	})
}

// loadTrip fetches the trip in the :id route parameter with its expenses.
// Writes the error response itself so handlers can just bail out.
func loadTrip(c *gin.Context) (models.Trip, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip ID format."})
		return models.Trip{}, false
	}

	var trip models.Trip
	if err := config.DB.Preload("Expenses").First(&trip, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return models.Trip{}, false
	}
	return trip, true
}
