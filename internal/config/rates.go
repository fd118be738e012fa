package config

import (
	"trucker_profit/internal/exchange"
)

var (
	// Rates is the globally accessible live-rate provider
	Rates *exchange.Provider
)

// InitRates wires the exchange rate provider from environment configuration.
// The source defaults to the keyless exchangerate-api tier.
func InitRates() {
	Rates = exchange.New(
		getEnv("EXCHANGE_RATE_SOURCE", "exchangerate-api"),
		getEnv("EXCHANGE_RATE_API_KEY", ""),
	)
}
