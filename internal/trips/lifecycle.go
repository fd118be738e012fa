// Package trips holds the trip lifecycle rules: the single active→completed
// transition with its exchange-rate lock, and the expense permission window.
package trips

import (
	"errors"
	"time"

	"trucker_profit/internal/models"
)

// GraceWindow is how long after completion the assigned driver may still
// record expenses against the trip. Expenses added inside the window are
// valued at the locked rate, like the rest of the completed trip.
const GraceWindow = 24 * time.Hour

// ErrAlreadyCompleted rejects a second completion of the same trip.
var ErrAlreadyCompleted = errors.New("trip is already completed")

// Complete transitions an active trip to completed, stamping the completion
// time and locking the supplied exchange rate. The three fields must be
// persisted together in one update so a trip is never observed completed
// without its locked rate.
func Complete(t *models.Trip, rate float64, now time.Time) error {
	if t.Completed() {
		return ErrAlreadyCompleted
	}
	t.Status = models.TripCompleted
	t.CompletedAt = &now
	t.ExchangeRateAt = &rate
	return nil
}

// CanAddExpense decides whether an actor may append an expense to the trip.
// The owner always may. The assigned driver may while the trip is active, or
// within GraceWindow of its completion. Nobody else ever may.
func CanAddExpense(t models.Trip, role models.Role, actorID uint, now time.Time) bool {
	switch role {
	case models.RoleOwner:
		return true
	case models.RoleDriver:
		if !t.AssignedTo(actorID) {
			return false
		}
		if !t.Completed() {
			return true
		}
		return t.CompletedAt != nil && now.Sub(*t.CompletedAt) <= GraceWindow
	}
	return false
}
