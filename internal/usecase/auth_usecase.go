// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bvs/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// VerifyOTPInput pairs an email with the code that was mailed to it.
type VerifyOTPInput struct {
	Email string
	OTP   string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResetPasswordInput defines the data required to replace a forgotten password.
type ResetPasswordInput struct {
	Email       string
	OTP         string
	NewPassword string
}

// --- Output DTOs ---

// RegisterOutput only exposes the new account's ID; the account stays unusable until verified.
type RegisterOutput struct {
	UserID uuid.UUID
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput carries a freshly minted access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// AuthUsecase defines the account lifecycle operations: registration, email
// verification, login, password recovery and session management.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	VerifyOTP(ctx context.Context, input *VerifyOTPInput) error
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	RefreshToken(ctx context.Context, refreshToken string) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, refreshToken string) error
}
