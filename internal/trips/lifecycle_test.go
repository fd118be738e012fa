package trips

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trucker_profit/internal/models"
)

func TestCompleteLocksRateAndTimestamp(t *testing.T) {
	trip := models.Trip{Status: models.TripActive}
	now := time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)

	require.NoError(t, Complete(&trip, 1.42, now))

	assert.Equal(t, models.TripCompleted, trip.Status)
	require.NotNil(t, trip.CompletedAt)
	assert.Equal(t, now, *trip.CompletedAt)
	require.NotNil(t, trip.ExchangeRateAt)
	assert.Equal(t, 1.42, *trip.ExchangeRateAt)
}

func TestCompleteIsOneWay(t *testing.T) {
	trip := models.Trip{Status: models.TripActive}
	now := time.Now().UTC()
	require.NoError(t, Complete(&trip, 1.42, now))

	err := Complete(&trip, 1.99, now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrAlreadyCompleted)

	// The original lock survives the rejected second attempt.
	assert.Equal(t, 1.42, *trip.ExchangeRateAt)
	assert.Equal(t, now, *trip.CompletedAt)
}

func TestCanAddExpenseOwnerAlways(t *testing.T) {
	completedAt := time.Now().UTC().Add(-30 * 24 * time.Hour)
	trip := models.Trip{
		Status:      models.TripCompleted,
		CompletedAt: &completedAt,
	}

	assert.True(t, CanAddExpense(trip, models.RoleOwner, 0, time.Now().UTC()))
}

func TestCanAddExpenseAssignedDriverWhileActive(t *testing.T) {
	driverID := uint(7)
	trip := models.Trip{Status: models.TripActive, DriverID: &driverID}

	now := time.Now().UTC()
	assert.True(t, CanAddExpense(trip, models.RoleDriver, 7, now))
	assert.False(t, CanAddExpense(trip, models.RoleDriver, 8, now))
}

func TestCanAddExpenseGraceWindow(t *testing.T) {
	driverID := uint(7)
	completedAt := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	trip := models.Trip{
		Status:      models.TripCompleted,
		DriverID:    &driverID,
		CompletedAt: &completedAt,
	}

	inside := completedAt.Add(23 * time.Hour)
	atEdge := completedAt.Add(GraceWindow)
	outside := completedAt.Add(25 * time.Hour)

	assert.True(t, CanAddExpense(trip, models.RoleDriver, 7, inside))
	assert.True(t, CanAddExpense(trip, models.RoleDriver, 7, atEdge))
	assert.False(t, CanAddExpense(trip, models.RoleDriver, 7, outside))
}

func TestCanAddExpenseUnassignedTrip(t *testing.T) {
	trip := models.Trip{Status: models.TripActive}
	assert.False(t, CanAddExpense(trip, models.RoleDriver, 7, time.Now().UTC()))
}

func TestCanAddExpenseUnknownRole(t *testing.T) {
	trip := models.Trip{Status: models.TripActive}
	assert.False(t, CanAddExpense(trip, models.Role("auditor"), 1, time.Now().UTC()))
}
