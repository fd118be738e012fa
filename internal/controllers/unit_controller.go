package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"trucker_profit/internal/config"
	"trucker_profit/internal/finance"
	"trucker_profit/internal/models"
)

// CreateUnit registers a new fleet unit - OWNER ONLY.
func CreateUnit(c *gin.Context) {
	var input struct {
		Number    string `json:"number" binding:"required"`
		Make      string `json:"make"`
		ModelName string `json:"model"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit input: " + err.Error()})
		return
	}

	unit := models.Unit{
		Number:    strings.TrimSpace(input.Number),
		Make:      strings.TrimSpace(input.Make),
		ModelName: strings.TrimSpace(input.ModelName),
	}
	if err := config.DB.Create(&unit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create unit: " + err.Error()})
		return
	}

	logrus.WithField("number", unit.Number).Info("New unit created")
	c.JSON(http.StatusCreated, gin.H{"unit": unit})
}

// ListUnits lists all units with maintenance totals - OWNER ONLY.
// Unit expenses are always valued at the live rate; units never lock one.
func ListUnits(c *gin.Context) {
	var units []models.Unit
	if err := config.DB.Preload("Expenses").Find(&units).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing units: " + err.Error()})
		return
	}

	settings := currentSettings()
	liveRate := config.Rates.CurrentRate()

	data := make([]gin.H, 0, len(units))
	for _, u := range units {
		data = append(data, gin.H{
			"unit":                   u,
			"total_expenses_primary": finance.UnitExpenses(u, liveRate, settings.PrimaryCurrency),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": data, "primary_currency": settings.PrimaryCurrency})
}

// GetUnit returns one unit with its maintenance costs and the revenue of the
// trips it ran - LOGIN REQUIRED.
func GetUnit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit ID format."})
		return
	}

	var unit models.Unit
	if err := config.DB.Preload("Expenses").First(&unit, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	var unitTrips []models.Trip
	if err := config.DB.Where("unit_id = ?", unit.ID).Find(&unitTrips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading trips: " + err.Error()})
		return
	}

	settings := currentSettings()
	liveRate := config.Rates.CurrentRate()

	c.JSON(http.StatusOK, gin.H{
		"unit":                  unit,
		"unit_expenses_primary": finance.UnitExpenses(unit, liveRate, settings.PrimaryCurrency),
		"revenue_primary":       finance.TripRevenue(unitTrips, liveRate, settings.PrimaryCurrency),
		"primary_currency":      settings.PrimaryCurrency,
	})
}

// AddUnitExpense appends a maintenance expense to a unit - OWNER ONLY.
// There is no lifecycle gate on unit expenses.
func AddUnitExpense(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit ID format."})
		return
	}

	var unit models.Unit
	if err := config.DB.First(&unit, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
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
		UnitID:      &unit.ID,
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

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}
