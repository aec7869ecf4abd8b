package middleware

import (
	"log/slog"
	"net/http"

	"bvs/internal/delivery/api/response"
	deliverycontext "bvs/internal/delivery/context"
	domainerrors "bvs/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(c, err)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.handleEchoError(c, httpErr)

		return
	}

	m.logError(c, err)
	_ = response.InternalServerError(c)
}

// handleEchoError maps router and framework errors onto the envelope.
func (m *ErrorMiddleware) handleEchoError(c echo.Context, httpErr *echo.HTTPError) {
	switch httpErr.Code {
	case http.StatusNotFound:
		notFound := domainerrors.ErrRouteNotFound
		_ = response.Error(c, notFound.HTTPCode(), notFound.ErrorCode(), notFound.Message(), nil)
	case http.StatusInternalServerError:
		m.logError(c, httpErr)
		_ = response.InternalServerError(c)
	default:
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)
	}
}

func (m *ErrorMiddleware) logError(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
