package finance

import (
	"sort"

	"trucker_profit/internal/models"
)

// TripSummary is one trip valued in the primary reporting currency. Every
// figure in a summary was converted with the same rate.
type TripSummary struct {
	Rate       float64 `json:"rate"`
	RateLocked bool    `json:"rate_locked"`
	Revenue    float64 `json:"revenue"`
	Expenses   float64 `json:"expenses"`
	Profit     float64 `json:"profit"`
}

// DashboardStats are the system-wide totals shown on the owner dashboard.
type DashboardStats struct {
	TotalTrips      int             `json:"total_trips"`
	ActiveTrips     int             `json:"active_trips"`
	CompletedTrips  int             `json:"completed_trips"`
	TotalRevenue    float64         `json:"total_revenue_primary"`
	TotalExpenses   float64         `json:"total_expenses_primary"`
	Net             float64         `json:"net_primary"`
	PrimaryCurrency models.Currency `json:"primary_currency"`
}

// tripRate selects the rate a trip is valued at: the locked snapshot for
// completed trips, the live rate for everything else.
func tripRate(t models.Trip, liveRate float64) (float64, bool) {
	if t.Completed() && t.ExchangeRateAt != nil {
		return *t.ExchangeRateAt, true
	}
	return liveRate, false
}

// SummarizeTrip values a trip's payment and all of its expense lines with a
// single rate, keeping revenue, expenses and profit mutually consistent.
func SummarizeTrip(t models.Trip, liveRate float64, primary models.Currency) TripSummary {
	rate, locked := tripRate(t, liveRate)
	s := TripSummary{Rate: rate, RateLocked: locked}
	s.Revenue = Convert(t.PaymentUSD, models.USD, rate, primary)
	for _, e := range t.Expenses {
		s.Expenses += Convert(e.Amount, e.Currency, rate, primary)
	}
	s.Profit = s.Revenue - s.Expenses
	return s
}

// UnitExpenses totals a unit's maintenance expenses at the live rate. Units
// never lock a rate, so their valuation moves with the market.
func UnitExpenses(u models.Unit, liveRate float64, primary models.Currency) float64 {
	var total float64
	for _, e := range u.Expenses {
		total += Convert(e.Amount, e.Currency, liveRate, primary)
	}
	return total
}

// TripRevenue sums revenue across trips, applying each trip's own rate
// selection. Used for per-driver and per-unit rollups.
func TripRevenue(trips []models.Trip, liveRate float64, primary models.Currency) float64 {
	var total float64
	for _, t := range trips {
		total += SummarizeTrip(t, liveRate, primary).Revenue
	}
	return total
}

// Summarize produces the system-wide totals: revenue over all trips, expenses
// over all trips plus all unit expenses, and the net. Callers fetch liveRate
// once and pass it in, so one report sees one consistent snapshot.
func Summarize(trips []models.Trip, units []models.Unit, liveRate float64, primary models.Currency) DashboardStats {
	stats := DashboardStats{
		TotalTrips:      len(trips),
		PrimaryCurrency: primary,
	}
	for _, t := range trips {
		if t.Completed() {
			stats.CompletedTrips++
		} else {
			stats.ActiveTrips++
		}
		s := SummarizeTrip(t, liveRate, primary)
		stats.TotalRevenue += s.Revenue
		stats.TotalExpenses += s.Expenses
	}
	for _, u := range units {
		stats.TotalExpenses += UnitExpenses(u, liveRate, primary)
	}
	stats.Net = stats.TotalRevenue - stats.TotalExpenses
	return stats
}

// RecentTrips returns up to n trips ordered by creation time descending.
// The sort is stable, so trips created at the same instant keep their
// incoming order.
func RecentTrips(trips []models.Trip, n int) []models.Trip {
	out := make([]models.Trip, len(trips))
	copy(out, trips)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
