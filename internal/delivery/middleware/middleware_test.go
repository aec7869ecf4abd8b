package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bvs/config"
	deliverycontext "bvs/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "reuses client id", incoming: "abc-123", reused: true},
		{name: "generates when missing"},
		{name: "rejects control characters", incoming: "bad\nid"},
		{name: "rejects oversized ids", incoming: strings.Repeat("x", maxRequestIDLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var fromCtx string
			err := NewRequestIDMiddleware(discardLogger()).Process(func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)

			require.NoError(t, err)
			header := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, header, fromCtx)
			if tt.reused {
				assert.Equal(t, tt.incoming, header)
			} else {
				assert.NotEqual(t, tt.incoming, header)
				assert.Len(t, header, 36)
			}
		})
	}
}

func TestMetricsMiddleware_RecordsRouteTemplate(t *testing.T) {
	m := NewMetricsMiddleware("bvs")

	e := echo.New()
	e.Use(m.Handle)
	e.GET("/api/agreements/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/metrics", m.Handler())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/agreements/42", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `bvs_http_requests_total{method="GET",route="/api/agreements/:id",status="204"} 1`)
	assert.Contains(t, body, "bvs_http_request_duration_seconds")
}

func TestLoggerMiddleware_RendersErrorsInDebug(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewLoggerMiddleware(discardLogger(), cfg).Handle)
	e.GET("/boom", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
