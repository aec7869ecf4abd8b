package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "bvs/internal/delivery/context"
	domainerrors "bvs/internal/domain/errors"
	"bvs/internal/domain/service"
	mockSvc "bvs/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		header  string
		setup   func(m *mockSvc.MockTokenService)
		wantErr error
	}{
		{
			name:    "missing header",
			wantErr: domainerrors.ErrTokenMissing,
		},
		{
			name:    "not a bearer token",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: domainerrors.ErrTokenMissing,
		},
		{
			name:   "expired token",
			header: "Bearer expired",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateAccessToken("expired").Return(nil, errors.Wrap(service.ErrTokenExpired, "parse"))
			},
			wantErr: domainerrors.ErrTokenExpired,
		},
		{
			name:   "invalid token",
			header: "Bearer garbage",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateAccessToken("garbage").Return(nil, service.ErrTokenInvalid)
			},
			wantErr: domainerrors.ErrTokenInvalid,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateAccessToken("good").Return(&service.Claims{
					UserID: userID,
					Roles:  []string{"user"},
					Type:   service.TokenTypeAccess,
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/agreements", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			var seen uuid.UUID
			err := m.Authenticate(func(c echo.Context) error {
				seen, _ = deliverycontext.GetUserID(c)

				return nil
			})(c)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, uuid.Nil, seen)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, seen)
		})
	}
}
