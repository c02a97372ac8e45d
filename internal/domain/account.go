package domain

import "time"

// Role is the closed set of permission levels an account can hold.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
	RoleStaff   Role = "staff"
	RoleStudent Role = "student"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleFaculty, RoleStaff, RoleStudent:
		return true
	}
	return false
}

// Account is the domain model for a registered identity. Username is unique
// across all campuses and immutable once created. PasswordHash is never
// serialized to clients.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CampusID     string
	Email        string
	FullName     string
	CreatedAt    time.Time
}
