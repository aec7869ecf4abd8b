// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bvs/config"
	"bvs/internal/delivery/api/middleware"
	"bvs/internal/delivery/api/router/handler"
	deliverymiddleware "bvs/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers registered by the router, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler             *handler.AuthHandler
	UserHandler             *handler.UserHandler
	AgreementHandler        *handler.AgreementHandler
	DigitalAgreementHandler *handler.DigitalAgreementHandler
	AuthMiddleware          *middleware.AuthMiddleware
	Metrics                 *deliverymiddleware.MetricsMiddleware
	Config                  *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler             *handler.AuthHandler
	userHandler             *handler.UserHandler
	agreementHandler        *handler.AgreementHandler
	digitalAgreementHandler *handler.DigitalAgreementHandler
	authMiddleware          *middleware.AuthMiddleware
	metrics                 *deliverymiddleware.MetricsMiddleware
	config                  *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:             params.AuthHandler,
		userHandler:             params.UserHandler,
		agreementHandler:        params.AgreementHandler,
		digitalAgreementHandler: params.DigitalAgreementHandler,
		authMiddleware:          params.AuthMiddleware,
		metrics:                 params.Metrics,
		config:                  params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, r.metrics.Handler())
	}

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/verify-otp", r.authHandler.VerifyOTP)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.POST("/refresh-token", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	usersGroup := api.Group("/users", r.authMiddleware.Authenticate)
	{
		usersGroup.GET("/profile", r.userHandler.GetProfile)
		usersGroup.PUT("/profile", r.userHandler.UpdateProfile)
		usersGroup.PUT("/change-password", r.userHandler.ChangePassword)
	}

	// Static segments are matched before :id, so stats/summary never reaches Get.
	agreementsGroup := api.Group("/agreements", r.authMiddleware.Authenticate)
	{
		agreementsGroup.GET("", r.agreementHandler.List)
		agreementsGroup.POST("", r.agreementHandler.Create)
		agreementsGroup.GET("/stats/summary", r.agreementHandler.Stats)
		agreementsGroup.GET("/:id", r.agreementHandler.Get)
		agreementsGroup.PUT("/:id", r.agreementHandler.Update)
		agreementsGroup.DELETE("/:id", r.agreementHandler.Delete)
		agreementsGroup.GET("/:id/qrcode", r.agreementHandler.QRCode)
	}

	digitalGroup := api.Group("/digital-agreements", r.authMiddleware.Authenticate)
	{
		digitalGroup.GET("", r.digitalAgreementHandler.List)
		digitalGroup.POST("", r.digitalAgreementHandler.Create)
		digitalGroup.GET("/stats/summary", r.digitalAgreementHandler.Stats)
		digitalGroup.GET("/:id", r.digitalAgreementHandler.Get)
		digitalGroup.PUT("/:id", r.digitalAgreementHandler.Update)
		digitalGroup.DELETE("/:id", r.digitalAgreementHandler.Delete)
		digitalGroup.PATCH("/:id/status", r.digitalAgreementHandler.UpdateStatus)
		digitalGroup.GET("/:id/qrcode", r.digitalAgreementHandler.QRCode)
	}
}
