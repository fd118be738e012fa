// internal/models/expense.go
package models

import (
	"gorm.io/gorm"
)

// Expense is a single cost line owned by either a trip or a unit (exactly one
// of TripID/UnitID is set). Expenses are append-only: once recorded they are
// never edited or removed, so completed-trip accounting stays stable.
type Expense struct {
	gorm.Model
	TripID *uint `json:"trip_id,omitempty" gorm:"index"`
	UnitID *uint `json:"unit_id,omitempty" gorm:"index"`

	Category    string   `json:"category"`
	Amount      float64  `json:"amount"`
	Currency    Currency `json:"currency"`
	Description string   `json:"description"`
	Receipt     string   `json:"receipt,omitempty"` // stored filename reference
}
