package controllers

import (
	logrus "github.com/sirupsen/logrus"

	"trucker_profit/internal/config"
	"trucker_profit/internal/exchange"
	"trucker_profit/internal/models"
)

// currentSettings loads the settings singleton. A read failure degrades to
// defaults rather than failing the request; reporting stays available even if
// the row is briefly unreadable.
func currentSettings() models.Settings {
	var s models.Settings
	if err := config.DB.Order("id").First(&s).Error; err != nil {
		logrus.WithError(err).Warn("Could not load settings, using defaults")
		return models.Settings{ExchangeRate: exchange.FallbackRate, PrimaryCurrency: models.USD}
	}
	return s
}

// driverNames returns an id→name map for resolving trip assignments in list
// views without a query per row.
func driverNames() map[uint]string {
	var drivers []models.Driver
	config.DB.Find(&drivers)
	names := make(map[uint]string, len(drivers))
	for _, d := range drivers {
		names[d.ID] = d.Name
	}
	return names
}

// unitNumbers returns an id→number map, same purpose as driverNames.
func unitNumbers() map[uint]string {
	var units []models.Unit
	config.DB.Find(&units)
	numbers := make(map[uint]string, len(units))
	for _, u := range units {
		numbers[u.ID] = u.Number
	}
	return numbers
}

// refName resolves an optional reference through one of the maps above,
// falling back to "-" for unassigned trips.
func refName(id *uint, names map[uint]string) string {
	if id == nil {
		return "-"
	}
	if name, ok := names[*id]; ok {
		return name
	}
	return "-"
}
