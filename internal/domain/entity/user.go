// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of the dashboard. Every agreement is owned by exactly one user.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name         string    // The user's display name.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash; the raw password is never stored.
	IsVerified   bool      // Set once an OTP sent to Email has been matched.
	Role         Role      // Authorization role carried in access tokens.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// Roles returns the user's role set in the form carried by JWT claims.
func (u *User) Roles() Roles {
	if u.Role == "" {
		return Roles{RoleUser}
	}

	return Roles{u.Role}
}
