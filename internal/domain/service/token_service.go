package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token type claim values.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Validation failures reported by TokenService. Every other parse failure is wrapped in ErrTokenInvalid.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	Type   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken creates an access token only, used by the refresh flow.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateAccessToken verifies signature, expiry and type of an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken verifies signature, expiry and type of a refresh token.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the digest under which a refresh token is stored.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
