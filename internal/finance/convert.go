// Package finance holds the currency conversion function and the aggregation
// of trip and unit figures into the primary reporting currency.
package finance

import (
	"math"

	"trucker_profit/internal/models"
)

// Convert maps an amount recorded in one currency into the target currency
// using rate, where 1 USD = rate CAD. Same-currency conversions return the
// amount unchanged and ignore the rate entirely. A zero or non-finite rate on
// a converting pair yields 0 instead of a division fault, and a pair outside
// USD/CAD passes the amount through unconverted. Convert never fails and is
// deterministic for identical inputs.
func Convert(amount float64, from models.Currency, rate float64, to models.Currency) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	if from == to {
		return amount
	}
	if rate == 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0
	}

	switch {
	case to == models.USD && from == models.CAD:
		return amount / rate
	case to == models.CAD && from == models.USD:
		return amount * rate
	}
	return amount
}
