package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bvs/config"
	apimiddleware "bvs/internal/delivery/api/middleware"
	"bvs/internal/delivery/api/router"
	"bvs/internal/delivery/api/router/handler"
	deliverycontext "bvs/internal/delivery/context"
	"bvs/internal/domain/entity"
	domainerrors "bvs/internal/domain/errors"
	"bvs/internal/domain/service"
	mockSvc "bvs/internal/mocks/service"
	mockUC "bvs/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo        *echo.Echo
	tokenSvc    *mockSvc.MockTokenService
	agreementUC *mockUC.MockAgreementUsecase
	digitalUC   *mockUC.MockDigitalAgreementUsecase
}

func createTestServer(t *testing.T) serverFixtures {
	cfg := &config.Config{
		Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.Env.ServiceName = "bvs-test"
	cfg.HTTP.MaxRequestBodySize = "1M"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokenSvc := mockSvc.NewMockTokenService(t)
	agreementUC := mockUC.NewMockAgreementUsecase(t)
	digitalUC := mockUC.NewMockDigitalAgreementUsecase(t)

	e := newEcho(cfg, logger, router.RouterParams{
		AuthHandler:             handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mockUC.NewMockAuthUsecase(t), Logger: logger}),
		UserHandler:             handler.NewUserHandler(mockUC.NewMockProfileUsecase(t)),
		AgreementHandler:        handler.NewAgreementHandler(agreementUC),
		DigitalAgreementHandler: handler.NewDigitalAgreementHandler(digitalUC),
		AuthMiddleware:          apimiddleware.NewAuthMiddleware(tokenSvc),
		Metrics:                 NewMetrics(cfg),
		Config:                  cfg,
	})

	return serverFixtures{echo: e, tokenSvc: tokenSvc, agreementUC: agreementUC, digitalUC: digitalUC}
}

func (fx serverFixtures) serve(req *http.Request) (*httptest.ResponseRecorder, domainerrors.Envelope) {
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var env domainerrors.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)

	return rec, env
}

func (fx serverFixtures) authorize(req *http.Request, userID uuid.UUID) {
	req.Header.Set(echo.HeaderAuthorization, "Bearer token-"+userID.String())
	fx.tokenSvc.EXPECT().
		ValidateAccessToken("token-"+userID.String()).
		Return(&service.Claims{UserID: userID, Roles: []string{"user"}, Type: service.TokenTypeAccess}, nil)
}

func TestServer_Health(t *testing.T) {
	fx := createTestServer(t)

	rec, env := fx.serve(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_ProtectedRoutesRequireBearer(t *testing.T) {
	fx := createTestServer(t)

	for _, path := range []string{"/api/agreements", "/api/digital-agreements", "/api/users/profile"} {
		rec, env := fx.serve(httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		require.NotNil(t, env.Error, path)
		assert.Equal(t, "TOKEN_MISSING", env.Error.Code, path)
		assert.False(t, env.Success, path)
	}
}

func TestServer_ExpiredToken(t *testing.T) {
	fx := createTestServer(t)
	fx.tokenSvc.EXPECT().ValidateAccessToken("stale").Return(nil, service.ErrTokenExpired)

	req := httptest.NewRequest(http.MethodGet, "/api/agreements", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer stale")
	rec, env := fx.serve(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_EXPIRED", env.Error.Code)
	assert.Equal(t, "Token expired", env.Message)
}

func TestServer_StatsRouteIsNotAnID(t *testing.T) {
	fx := createTestServer(t)
	userID := uuid.New()
	fx.agreementUC.EXPECT().Stats(mock.Anything, userID).Return(&entity.AgreementStats{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/agreements/stats/summary", nil)
	fx.authorize(req, userID)
	rec, env := fx.serve(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestServer_DigitalSearchQuery(t *testing.T) {
	fx := createTestServer(t)
	userID := uuid.New()
	fx.digitalUC.EXPECT().List(mock.Anything, userID, "acme").Return([]*entity.DigitalAgreement{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/digital-agreements?search=acme", nil)
	fx.authorize(req, userID)
	rec, env := fx.serve(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Count)
	assert.Equal(t, 0, *env.Count)
}

func TestServer_UnknownRoute(t *testing.T) {
	fx := createTestServer(t)

	rec, env := fx.serve(httptest.NewRequest(http.MethodGet, "/api/nothing-here", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	fx := createTestServer(t)
	fx.serve(httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `bvs_test_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestNewMetrics_Disabled(t *testing.T) {
	assert.Nil(t, NewMetrics(&config.Config{}))
	assert.Nil(t, NewMetrics(&config.Config{Metrics: &config.MetricsConfig{Enabled: false}}))
}
