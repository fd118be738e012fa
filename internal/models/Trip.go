// internal/models/trip.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// TripStatus is the trip lifecycle state. Trips start active and make a
// single transition to completed; there is no way back.
type TripStatus string

const (
	TripActive    TripStatus = "active"
	TripCompleted TripStatus = "completed"
)

// Trip is one haul: a route, an optional assigned driver and unit, the agreed
// payment (stored canonically in USD), and an append-only expense list.
// ExchangeRateAt is set exactly once when the trip completes and is the rate
// used for every later valuation of this trip; it is present iff the trip is
// completed.
type Trip struct {
	gorm.Model
	TripNumber   string `json:"trip_number"`
	DriverID     *uint  `json:"driver_id,omitempty" gorm:"index"`
	UnitID       *uint  `json:"unit_id,omitempty" gorm:"index"`
	PickupCity   string `json:"pickup_city"`
	PickupDate   string `json:"pickup_date"`
	DeliveryCity string `json:"delivery_city"`
	DeliveryDate string `json:"delivery_date"`

	PaymentUSD     float64    `json:"payment_usd"`
	Status         TripStatus `json:"status" gorm:"default:active"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	ExchangeRateAt *float64   `json:"exchange_rate_at,omitempty"`

	Expenses []Expense `gorm:"foreignKey:TripID" json:"expenses,omitempty"`
}

// Completed reports whether the trip has reached its terminal state.
func (t Trip) Completed() bool {
	return t.Status == TripCompleted
}

// AssignedTo reports whether the trip is assigned to the given driver.
func (t Trip) AssignedTo(driverID uint) bool {
	return t.DriverID != nil && *t.DriverID == driverID
}
