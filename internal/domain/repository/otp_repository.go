package repository

import (
	"context"
	"errors"

	"bvs/internal/domain/entity"
)

// ErrOTPNotFound is returned when no unexpired code matches the email and code pair.
var ErrOTPNotFound = errors.New("otp not found")

// OTPRepository stores one-time passwords. Several outstanding codes may exist per email.
type OTPRepository interface {
	// Create stores a new code.
	Create(ctx context.Context, otp *entity.OneTimePassword) error

	// Consume atomically deletes the unexpired code matching email and code.
	// It returns ErrOTPNotFound when nothing matched, so a code is accepted at most once.
	Consume(ctx context.Context, email, code string) error

	// DeleteExpired removes codes past their expiry and reports how many were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
