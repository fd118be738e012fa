// internal/models/settings.go
package models

import (
	"gorm.io/gorm"
)

// Settings is the single-row system configuration: the manually maintained
// USD→CAD exchange rate and the currency all reports are displayed in.
// One row is seeded with defaults on first boot; updates are last-writer-wins.
type Settings struct {
	gorm.Model
	ExchangeRate    float64  `json:"exchange_rate"`
	PrimaryCurrency Currency `json:"primary_currency"`
}
