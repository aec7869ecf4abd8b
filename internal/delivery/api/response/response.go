package response

import (
	"net/http"

	domainerrors "bvs/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MIMEImagePNG is the content type of rendered QR codes.
const MIMEImagePNG = "image/png"

// Success returns a successful response carrying data
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, domainerrors.Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List returns a successful response for a collection, with its size in count
func List[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	count := len(items)

	return c.JSON(http.StatusOK, domainerrors.Envelope{
		Success: true,
		Data:    items,
		Count:   &count,
	})
}

// Message returns a successful response without data
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, domainerrors.Envelope{
		Success: true,
		Message: message,
	})
}

// PNG writes raw image bytes
func PNG(c echo.Context, data []byte) error {
	return c.Blob(http.StatusOK, MIMEImagePNG, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details are only exposed for client errors
	if statusCode >= http.StatusInternalServerError {
		details = nil
	}

	return c.JSON(statusCode, domainerrors.Envelope{
		Success: false,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError,
		domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), nil)
}

// HandleAppError renders an AppError found anywhere in err's chain, and returns
// any other error to the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
