package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"bvs/internal/delivery/api/validator"
	deliverycontext "bvs/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// testEnvelope mirrors the response envelope with a raw data payload.
type testEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Error   *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type testRequest struct {
	method string
	target string
	body   string
	userID uuid.UUID
	id     string
}

func newTestContext(tr testRequest) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(tr.method, tr.target, strings.NewReader(tr.body))
	if tr.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if tr.userID != uuid.Nil {
		deliverycontext.SetIdentity(c, tr.userID, []string{"user"})
	}
	if tr.id != "" {
		c.SetParamNames("id")
		c.SetParamValues(tr.id)
	}

	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}
