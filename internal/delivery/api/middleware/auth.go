package middleware

import (
	"strings"

	deliverycontext "bvs/internal/delivery/context"
	domainerrors "bvs/internal/domain/errors"
	"bvs/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and records the caller on the context.
// Failures are returned as AppErrors so the central handler renders them.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrTokenMissing
		}

		claims, err := m.tokenSvc.ValidateAccessToken(strings.TrimSpace(tokenString))
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return domainerrors.ErrTokenExpired
			}

			return domainerrors.ErrTokenInvalid
		}

		deliverycontext.SetIdentity(c, claims.UserID, claims.Roles)

		return next(c)
	}
}
