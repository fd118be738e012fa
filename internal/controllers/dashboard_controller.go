package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trucker_profit/internal/config"
	"trucker_profit/internal/finance"
	"trucker_profit/internal/middleware"
	"trucker_profit/internal/models"
)

// OwnerDashboard returns the system-wide totals and the ten most recent
// trips - OWNER ONLY. The live rate is fetched once for the whole report so
// every active trip in it sees the same snapshot.
func OwnerDashboard(c *gin.Context) {
	var allTrips []models.Trip
	if err := config.DB.Preload("Expenses").Find(&allTrips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading trips: " + err.Error()})
		return
	}
	var allUnits []models.Unit
	if err := config.DB.Preload("Expenses").Find(&allUnits).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading units: " + err.Error()})
		return
	}

	settings := currentSettings()
	liveRate := config.Rates.CurrentRate()

	stats := finance.Summarize(allTrips, allUnits, liveRate, settings.PrimaryCurrency)

	drivers := driverNames()
	units := unitNumbers()
	recent := make([]gin.H, 0, 10)
	for _, t := range finance.RecentTrips(allTrips, 10) {
		s := finance.SummarizeTrip(t, liveRate, settings.PrimaryCurrency)
		recent = append(recent, gin.H{
			"pickup_date": t.PickupDate,
			"trip_number": t.TripNumber,
			"driver_name": refName(t.DriverID, drivers),
			"unit_number": refName(t.UnitID, units),
			"route":       t.PickupCity + " → " + t.DeliveryCity,
			"status":      t.Status,
			"profit":      s.Profit,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":        stats,
		"recent_trips": recent,
	})
}

// DriverDashboard lists the authenticated driver's trips with summaries.
func DriverDashboard(c *gin.Context) {
	actorID, _ := middleware.ActorFromContext(c)

	var myTrips []models.Trip
	if err := config.DB.Preload("Expenses").Where("driver_id = ?", actorID).Find(&myTrips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading trips: " + err.Error()})
		return
	}

	settings := currentSettings()
	liveRate := config.Rates.CurrentRate()

	data := make([]gin.H, 0, len(myTrips))
	for _, t := range finance.RecentTrips(myTrips, len(myTrips)) {
		s := finance.SummarizeTrip(t, liveRate, settings.PrimaryCurrency)
		data = append(data, gin.H{
			"trip":    t,
			"summary": s,
		})
	}

	c.JSON(http.StatusOK, gin.H{"trips": data, "primary_currency": settings.PrimaryCurrency})
}
