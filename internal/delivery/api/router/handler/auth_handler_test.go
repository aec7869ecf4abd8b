package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"bvs/internal/domain/entity"
	domainerrors "bvs/internal/domain/errors"
	mockUC "bvs/internal/mocks/usecase"
	"bvs/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthHandler(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{
		AuthUC: authUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), authUC
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		userID := uuid.New()
		authUC.EXPECT().
			Register(mock.Anything, &usecase.RegisterInput{Name: "Teja", Email: "teja@example.com", Password: "secret1"}).
			Return(&usecase.RegisterOutput{UserID: userID}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/auth/register",
			body:   `{"name":"Teja","email":"teja@example.com","password":"secret1"}`,
		})
		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
		assert.JSONEq(t, `{"userId":"`+userID.String()+`"}`, string(env.Data))
	})

	t.Run("shape errors never reach the use case", func(t *testing.T) {
		h, _ := createTestAuthHandler(t)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/auth/register",
			body:   `{"name":"","email":"nope","password":"123"}`,
		})
		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "name")
		assert.Contains(t, env.Error.Details, "email")
		assert.Contains(t, env.Error.Details, "password")
	})

	t.Run("duplicate email", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		authUC.EXPECT().
			Register(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "register"))

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/auth/register",
			body:   `{"name":"Teja","email":"teja@example.com","password":"secret1"}`,
		})
		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := createTestAuthHandler(t)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/auth/register",
			body:   `{"name":`,
		})
		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decodeEnvelope(t, rec).Message)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns tokens and user summary", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		user := &entity.User{ID: uuid.New(), Name: "Teja", Email: "teja@example.com", Role: entity.RoleUser}
		authUC.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Email: "teja@example.com", Password: "secret1"}).
			Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh", User: user}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/auth/login",
			body:   `{"email":"teja@example.com","password":"secret1"}`,
		})
		require.NoError(t, h.Login(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var data LoginResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
		assert.Equal(t, "access", data.AccessToken)
		assert.Equal(t, "refresh", data.RefreshToken)
		assert.Equal(t, user.ID, data.User.ID)
		assert.Equal(t, "user", data.User.Role)
	})

	t.Run("unauthorized hides details", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/auth/login",
			body:   `{"email":"teja@example.com","password":"wrong"}`,
		})
		require.NoError(t, h.Login(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
		assert.Equal(t, "Invalid credentials", env.Message)
	})
}

func TestAuthHandler_RefreshAndLogout(t *testing.T) {
	t.Run("refresh returns access token only", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		authUC.EXPECT().RefreshToken(mock.Anything, "refresh").Return(&usecase.RefreshTokenOutput{AccessToken: "new-access"}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/auth/refresh-token",
			body:   `{"refreshToken":"refresh"}`,
		})
		require.NoError(t, h.RefreshToken(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"accessToken":"new-access"}`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("logout without a token is a validation error", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		authUC.EXPECT().
			Logout(mock.Anything, "").
			Return(domainerrors.NewValidationError(domainerrors.FieldErrors{"refreshToken": "is required"}))

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/auth/logout",
			body:   `{}`,
		})
		require.NoError(t, h.Logout(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "is required", decodeEnvelope(t, rec).Error.Details["refreshToken"])
	})
}

func TestAuthHandler_OTPFlows(t *testing.T) {
	t.Run("verify rejects short codes", func(t *testing.T) {
		h, _ := createTestAuthHandler(t)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/auth/verify-otp",
			body:   `{"email":"teja@example.com","otp":"123"}`,
		})
		require.NoError(t, h.VerifyOTP(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "otp")
	})

	t.Run("forgot password for unknown email", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		authUC.EXPECT().ForgotPassword(mock.Anything, "ghost@example.com").Return(domainerrors.ErrUserNotFound)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/auth/forgot-password",
			body:   `{"email":"ghost@example.com"}`,
		})
		require.NoError(t, h.ForgotPassword(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("reset password with wrong code", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		authUC.EXPECT().ResetPassword(mock.Anything, &usecase.ResetPasswordInput{
			Email:       "teja@example.com",
			OTP:         "654321",
			NewPassword: "newsecret",
		}).Return(domainerrors.ErrInvalidOTP)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/auth/reset-password",
			body:   `{"email":"teja@example.com","otp":"654321","newPassword":"newsecret"}`,
		})
		require.NoError(t, h.ResetPassword(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_OTP", decodeEnvelope(t, rec).Error.Code)
	})
}
