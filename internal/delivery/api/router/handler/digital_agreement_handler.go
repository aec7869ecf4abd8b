package handler

import (
	"net/http"

	"bvs/internal/delivery/api/response"
	domainerrors "bvs/internal/domain/errors"
	"bvs/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DigitalAgreementHandler serves /api/digital-agreements.
type DigitalAgreementHandler struct {
	digitalUC usecase.DigitalAgreementUsecase
}

// NewDigitalAgreementHandler is the constructor for DigitalAgreementHandler, injected by Fx.
func NewDigitalAgreementHandler(digitalUC usecase.DigitalAgreementUsecase) *DigitalAgreementHandler {
	return &DigitalAgreementHandler{digitalUC: digitalUC}
}

func (req *DigitalAgreementRequest) toInput() *usecase.DigitalAgreementInput {
	return &usecase.DigitalAgreementInput{
		ClientName:         req.ClientName,
		ClientCompany:      req.ClientCompany,
		ClientAddress:      req.ClientAddress,
		Services:           toServiceItems(req.Services),
		AdditionalServices: toAdditionalServiceItems(req.AdditionalServices),
		StartDate:          req.StartDate.ptr(),
		EndDate:            req.EndDate.ptr(),
		Platforms:          req.Platforms,
		TravelAllowance:    req.TravelAllowance,
		DroneShoot:         req.DroneShoot,
		Notes:              req.Notes,
		Status:             req.Status,
	}
}

// List returns the caller's digital agreements, optionally filtered by ?search=.
func (h *DigitalAgreementHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	agreements, err := h.digitalUC.List(c.Request().Context(), userID, c.QueryParam("search"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, mapSlice(agreements, toDigitalAgreementResponse))
}

// Create stores a new digital agreement owned by the caller.
func (h *DigitalAgreementHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req DigitalAgreementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	agreement, err := h.digitalUC.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toDigitalAgreementResponse(agreement), "Digital agreement created successfully")
}

// Get returns one of the caller's digital agreements.
func (h *DigitalAgreementHandler) Get(c echo.Context) error {
	userID, id, err := h.scope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	agreement, err := h.digitalUC.Get(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDigitalAgreementResponse(agreement), "")
}

// Update replaces the client-controlled fields of one of the caller's digital agreements.
func (h *DigitalAgreementHandler) Update(c echo.Context) error {
	userID, id, err := h.scope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req DigitalAgreementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	agreement, err := h.digitalUC.Update(c.Request().Context(), userID, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDigitalAgreementResponse(agreement), "Digital agreement updated successfully")
}

// UpdateStatus sets only the status of one of the caller's digital agreements.
func (h *DigitalAgreementHandler) UpdateStatus(c echo.Context) error {
	userID, id, err := h.scope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	agreement, err := h.digitalUC.UpdateStatus(c.Request().Context(), userID, id, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDigitalAgreementResponse(agreement), "Digital agreement status updated successfully")
}

// Delete removes one of the caller's digital agreements.
func (h *DigitalAgreementHandler) Delete(c echo.Context) error {
	userID, id, err := h.scope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.digitalUC.Delete(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Digital agreement deleted successfully")
}

// Stats summarizes the caller's digital agreements.
func (h *DigitalAgreementHandler) Stats(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	stats, err := h.digitalUC.Stats(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonNilStats(stats), "")
}

// QRCode renders a PNG QR code for one of the caller's digital agreements.
func (h *DigitalAgreementHandler) QRCode(c echo.Context) error {
	userID, id, err := h.scope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.digitalUC.QRCode(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}

func (h *DigitalAgreementHandler) scope(c echo.Context) (userID, id uuid.UUID, err error) {
	return ownedResource(c, domainerrors.ErrDigitalAgreementNotFound)
}
