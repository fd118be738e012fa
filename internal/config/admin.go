package config

import (
	"log"

	"golang.org/x/crypto/bcrypt"
)

var (
	// AdminUsername is the login identifier for the single owner account
	AdminUsername string
	// AdminPasswordHash is the bcrypt hash the owner password is checked against
	AdminPasswordHash string
)

// InitAdmin resolves the owner credentials. The owner is not a database row:
// the account comes entirely from the environment. If no precomputed hash is
// supplied, ADMIN_PASSWORD (default "admin123") is hashed at boot so login
// always compares against a bcrypt hash.
func InitAdmin() {
	AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", "")
	if AdminPasswordHash == "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("could not hash admin password: %v", err)
		}
		AdminPasswordHash = string(hash)
	}
}
