package service

import (
	"context"

	"bvs/internal/domain/entity"
)

// Mailer delivers account emails.
type Mailer interface {
	// SendOTP mails a one-time code. The purpose selects the wording of the message.
	SendOTP(ctx context.Context, email, code string, purpose entity.OTPPurpose) error
}
