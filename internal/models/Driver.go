// internal/models/driver.go
package models

import (
	"gorm.io/gorm"
)

// Driver is a registered driver account. Credentials live here directly;
// the owner account is configured through the environment, not the database.
type Driver struct {
	gorm.Model
	Name           string `json:"name"`
	Email          string `json:"email" gorm:"unique"`
	PasswordHash   string `json:"-"`
	Phone          string `json:"phone"`
	IDNumber       string `json:"id_number"`
	DrivingLicense string `json:"driving_license"`
	Photo          string `json:"photo,omitempty"` // stored filename reference

	// Trips hold the driver reference, not the reverse
	Trips []Trip `gorm:"foreignKey:DriverID" json:"trips,omitempty"`
}
