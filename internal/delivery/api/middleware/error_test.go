package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "bvs/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, domainerrors.Envelope) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/agreements", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body domainerrors.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Run("wrapped app error keeps its details", func(t *testing.T) {
		err := errors.Wrap(domainerrors.NewValidationError(domainerrors.FieldErrors{"clientName": "is required"}), "create")

		rec, body := renderError(t, err)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, body.Success)
		assert.Equal(t, "Validation failed", body.Message)
		require.NotNil(t, body.Error)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, map[string]any{"clientName": "is required"}, body.Error.Details)
	})

	t.Run("unknown error is a generic 500", func(t *testing.T) {
		rec, body := renderError(t, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("unknown route", func(t *testing.T) {
		rec, body := renderError(t, echo.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec, body := renderError(t, echo.ErrMethodNotAllowed)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	})
}
