package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"trucker_profit/internal/config"
	"trucker_profit/internal/models"
)

// GetSettings returns the settings singleton plus the provider's current live
// rate - OWNER ONLY.
func GetSettings(c *gin.Context) {
	settings := currentSettings()
	c.JSON(http.StatusOK, gin.H{
		"settings":  settings,
		"live_rate": config.Rates.CurrentRate(),
	})
}

// SetPrimaryCurrency switches the reporting currency - OWNER ONLY.
// Anything outside USD/CAD is coerced to USD.
func SetPrimaryCurrency(c *gin.Context) {
	var input struct {
		PrimaryCurrency string `json:"primary_currency" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cur := models.ParseCurrency(input.PrimaryCurrency)
	settings := currentSettings()
	if err := config.DB.Model(&models.Settings{}).Where("id = ?", settings.ID).Update("primary_currency", cur).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update primary currency: " + err.Error()})
		return
	}

	logrus.WithField("currency", cur).Info("Primary currency changed")
	c.JSON(http.StatusOK, gin.H{"message": "Primary currency updated.", "primary_currency": cur})
}

// SetExchangeRate updates the manual USD→CAD rate used when recording
// CAD-quoted payments - OWNER ONLY.
func SetExchangeRate(c *gin.Context) {
	var input struct {
		ExchangeRate float64 `json:"exchange_rate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ExchangeRate <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exchange rate must be positive"})
		return
	}

	settings := currentSettings()
	if err := config.DB.Model(&models.Settings{}).Where("id = ?", settings.ID).Update("exchange_rate", input.ExchangeRate).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update exchange rate: " + err.Error()})
		return
	}

	logrus.WithField("rate", input.ExchangeRate).Info("Manual exchange rate changed")
	c.JSON(http.StatusOK, gin.H{"message": "Exchange rate updated.", "exchange_rate": input.ExchangeRate})
}

// RefreshRate drops the provider cache and fetches a fresh live rate - OWNER
// ONLY.
func RefreshRate(c *gin.Context) {
	config.Rates.Invalidate()
	rate := config.Rates.CurrentRate()
	c.JSON(http.StatusOK, gin.H{"live_rate": rate})
}
