package handler

import (
	deliverycontext "bvs/internal/delivery/context"
	domainerrors "bvs/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID returns the caller recorded by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrTokenInvalid
	}

	return userID, nil
}

// pathID parses the :id parameter. A malformed ID cannot name an existing row,
// so it is reported as notFound rather than as a validation failure.
func pathID(c echo.Context, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, notFound
	}

	return id, nil
}

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid request body")
	}

	return c.Validate(req)
}

// ownedResource resolves the caller and the :id parameter of an owner-scoped route.
func ownedResource(c echo.Context, notFound error) (userID, id uuid.UUID, err error) {
	if userID, err = currentUserID(c); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if id, err = pathID(c, notFound); err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return userID, id, nil
}
