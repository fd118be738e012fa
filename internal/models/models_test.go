package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	assert.Equal(t, USD, ParseCurrency("USD"))
	assert.Equal(t, CAD, ParseCurrency("cad"))
	assert.Equal(t, CAD, ParseCurrency("  CAD "))

	// Anything unrecognized is coerced to the canonical currency.
	assert.Equal(t, USD, ParseCurrency(""))
	assert.Equal(t, USD, ParseCurrency("EUR"))
	assert.Equal(t, USD, ParseCurrency("dollars"))
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("owner")
	assert.True(t, ok)
	assert.Equal(t, RoleOwner, role)

	role, ok = ParseRole("driver")
	assert.True(t, ok)
	assert.Equal(t, RoleDriver, role)

	_, ok = ParseRole("admin")
	assert.False(t, ok)
	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestTripAssignment(t *testing.T) {
	var trip Trip
	assert.False(t, trip.AssignedTo(1))

	id := uint(7)
	trip.DriverID = &id
	assert.True(t, trip.AssignedTo(7))
	assert.False(t, trip.AssignedTo(8))
}
