package models

// Role identifies the kind of actor carried in JWT claims. There are exactly
// two: the single owner account and registered drivers.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleDriver Role = "driver"
)

// ParseRole maps a raw claim value onto the closed role set. Anything outside
// it is rejected rather than silently falling through a permission check.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleOwner:
		return RoleOwner, true
	case RoleDriver:
		return RoleDriver, true
	}
	return "", false
}
