package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"trucker_profit/internal/models"
)

func completedTrip(payment, lockedRate float64, expenses ...models.Expense) models.Trip {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.Trip{
		PaymentUSD:     payment,
		Status:         models.TripCompleted,
		CompletedAt:    &at,
		ExchangeRateAt: &lockedRate,
		Expenses:       expenses,
	}
}

func TestSummarizeTripUsesLockedRateWhenCompleted(t *testing.T) {
	trip := completedTrip(1000, 1.40,
		models.Expense{Amount: 140, Currency: models.CAD},
		models.Expense{Amount: 50, Currency: models.USD},
	)

	// Live rate has drifted since completion; it must not leak in.
	s := SummarizeTrip(trip, 1.50, models.USD)

	assert.True(t, s.RateLocked)
	assert.Equal(t, 1.40, s.Rate)
	assert.InDelta(t, 1000.0, s.Revenue, 1e-9)
	assert.InDelta(t, 150.0, s.Expenses, 1e-9) // 140/1.40 + 50
	assert.InDelta(t, 850.0, s.Profit, 1e-9)
}

func TestSummarizeTripUsesLiveRateWhileActive(t *testing.T) {
	trip := models.Trip{
		PaymentUSD: 1000,
		Status:     models.TripActive,
		Expenses:   []models.Expense{{Amount: 150, Currency: models.CAD}},
	}

	s := SummarizeTrip(trip, 1.50, models.USD)

	assert.False(t, s.RateLocked)
	assert.Equal(t, 1.50, s.Rate)
	assert.InDelta(t, 100.0, s.Expenses, 1e-9)
	assert.InDelta(t, 900.0, s.Profit, 1e-9)
}

func TestSummarizeTripAllFiguresShareOneRate(t *testing.T) {
	trip := completedTrip(500, 1.25, models.Expense{Amount: 125, Currency: models.CAD})

	s := SummarizeTrip(trip, 2.0, models.CAD)

	// Revenue and expenses both valued at the locked 1.25.
	assert.InDelta(t, 625.0, s.Revenue, 1e-9)
	assert.InDelta(t, 125.0, s.Expenses, 1e-9)
	assert.InDelta(t, s.Revenue-s.Expenses, s.Profit, 1e-9)
}

func TestUnitExpensesAlwaysUseLiveRate(t *testing.T) {
	unit := models.Unit{Expenses: []models.Expense{
		{Amount: 300, Currency: models.CAD},
		{Amount: 40, Currency: models.USD},
	}}

	assert.InDelta(t, 240.0, UnitExpenses(unit, 1.50, models.USD), 1e-9)
	// Same rows, different live rate, different total.
	assert.InDelta(t, 290.0, UnitExpenses(unit, 1.20, models.USD), 1e-9)
}

func TestSummarizeMixesLockedAndLiveTrips(t *testing.T) {
	locked := completedTrip(1000, 1.40, models.Expense{Amount: 140, Currency: models.CAD})
	active := models.Trip{
		PaymentUSD: 500,
		Status:     models.TripActive,
		Expenses:   []models.Expense{{Amount: 150, Currency: models.CAD}},
	}
	unit := models.Unit{Expenses: []models.Expense{{Amount: 75, Currency: models.USD}}}

	stats := Summarize([]models.Trip{locked, active}, []models.Unit{unit}, 1.50, models.USD)

	assert.Equal(t, 2, stats.TotalTrips)
	assert.Equal(t, 1, stats.ActiveTrips)
	assert.Equal(t, 1, stats.CompletedTrips)
	assert.InDelta(t, 1500.0, stats.TotalRevenue, 1e-9)
	assert.InDelta(t, 100+100+75.0, stats.TotalExpenses, 1e-9)
	assert.InDelta(t, stats.TotalRevenue-stats.TotalExpenses, stats.Net, 1e-9)
	assert.Equal(t, models.USD, stats.PrimaryCurrency)
}

func TestRecentTripsOrderAndLimit(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mk := func(num string, offset time.Duration) models.Trip {
		return models.Trip{
			Model:      gorm.Model{CreatedAt: base.Add(offset)},
			TripNumber: num,
		}
	}

	in := []models.Trip{
		mk("old", 0),
		mk("newest", 3 * time.Hour),
		mk("mid", 1 * time.Hour),
		mk("also-mid", 1 * time.Hour), // same instant as "mid"
	}

	out := RecentTrips(in, 3)
	require.Len(t, out, 3)
	assert.Equal(t, "newest", out[0].TripNumber)
	// Ties keep their incoming order.
	assert.Equal(t, "mid", out[1].TripNumber)
	assert.Equal(t, "also-mid", out[2].TripNumber)

	// Input slice is left untouched.
	assert.Equal(t, "old", in[0].TripNumber)
}

func TestRecentTripsShorterThanLimit(t *testing.T) {
	out := RecentTrips([]models.Trip{{TripNumber: "only"}}, 10)
	require.Len(t, out, 1)
	assert.Equal(t, "only", out[0].TripNumber)
}
