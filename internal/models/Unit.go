// internal/models/unit.go
package models

import (
	"gorm.io/gorm"
)

// Unit is a fleet vehicle. Its expense list tracks maintenance costs that are
// not tied to any trip; units have no completion state, so those expenses are
// always valued at the live exchange rate.
type Unit struct {
	gorm.Model
	Number    string `json:"number"`
	Make      string `json:"make"`
	ModelName string `json:"model"`

	Expenses []Expense `gorm:"foreignKey:UnitID" json:"expenses,omitempty"`
	Trips    []Trip    `gorm:"foreignKey:UnitID" json:"trips,omitempty"`
}
