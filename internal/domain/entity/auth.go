// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTPPurpose records why a one-time password was issued. It is informational only:
// lookups match on email and code regardless of purpose.
type OTPPurpose string

const (
	// OTPPurposeVerification is issued at registration.
	OTPPurposeVerification OTPPurpose = "verification"
	// OTPPurposePasswordReset is issued by the forgot-password flow.
	OTPPurposePasswordReset OTPPurpose = "password_reset"
)

// OneTimePassword is a short-lived numeric code mailed to an address.
// A code is consumed by deleting it, so it can be matched at most once.
type OneTimePassword struct {
	ID        uuid.UUID
	Email     string
	Code      string
	Purpose   OTPPurpose
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the code can no longer be matched at the given instant.
func (o *OneTimePassword) IsExpired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // Stores a SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}
