package models

import "strings"

// Currency is one of the two currency codes the system supports.
// Amounts are recorded in either and reported in the primary currency.
type Currency string

const (
	USD Currency = "USD"
	CAD Currency = "CAD"
)

// ParseCurrency normalizes a raw currency code. Unrecognized or empty codes
// fall back to USD, the same default applied to documents missing the field.
func ParseCurrency(raw string) Currency {
	if strings.ToUpper(strings.TrimSpace(raw)) == "CAD" {
		return CAD
	}
	return USD
}
