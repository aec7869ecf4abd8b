package handler

import (
	"net/http"

	"bvs/internal/delivery/api/response"
	"bvs/internal/domain/entity"
	domainerrors "bvs/internal/domain/errors"
	"bvs/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AgreementHandler serves /api/agreements.
type AgreementHandler struct {
	agreementUC usecase.AgreementUsecase
}

// NewAgreementHandler is the constructor for AgreementHandler, injected by Fx.
func NewAgreementHandler(agreementUC usecase.AgreementUsecase) *AgreementHandler {
	return &AgreementHandler{agreementUC: agreementUC}
}

// toInput treats an explicit warrantyYears of 0 like an omitted one.
func (req *AgreementRequest) toInput() *usecase.AgreementInput {
	warrantyYears := req.WarrantyYears
	if warrantyYears != nil && *warrantyYears == 0 {
		warrantyYears = nil
	}

	return &usecase.AgreementInput{
		ClientName:    req.ClientName,
		ClientCompany: req.ClientCompany,
		Services:      toServiceItems(req.Services),
		WarrantyYears: warrantyYears,
		StartDate:     req.StartDate.ptr(),
		EndDate:       req.EndDate.ptr(),
		Notes:         req.Notes,
		Status:        req.Status,
	}
}

// List returns the caller's agreements, newest first.
func (h *AgreementHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	agreements, err := h.agreementUC.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, mapSlice(agreements, toAgreementResponse))
}

// Create stores a new agreement owned by the caller.
func (h *AgreementHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AgreementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	agreement, err := h.agreementUC.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAgreementResponse(agreement), "Agreement created successfully")
}

// Get returns one of the caller's agreements.
func (h *AgreementHandler) Get(c echo.Context) error {
	userID, id, err := h.scope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	agreement, err := h.agreementUC.Get(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAgreementResponse(agreement), "")
}

// Update replaces the mutable fields of one of the caller's agreements.
func (h *AgreementHandler) Update(c echo.Context) error {
	userID, id, err := h.scope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AgreementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	agreement, err := h.agreementUC.Update(c.Request().Context(), userID, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAgreementResponse(agreement), "Agreement updated successfully")
}

// Delete removes one of the caller's agreements.
func (h *AgreementHandler) Delete(c echo.Context) error {
	userID, id, err := h.scope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.agreementUC.Delete(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Agreement deleted successfully")
}

// Stats summarizes the caller's agreements.
func (h *AgreementHandler) Stats(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	stats, err := h.agreementUC.Stats(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonNilStats(stats), "")
}

// QRCode renders a PNG QR code for one of the caller's agreements.
func (h *AgreementHandler) QRCode(c echo.Context) error {
	userID, id, err := h.scope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.agreementUC.QRCode(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}

func (h *AgreementHandler) scope(c echo.Context) (userID, id uuid.UUID, err error) {
	return ownedResource(c, domainerrors.ErrAgreementNotFound)
}

func nonNilStats(stats *entity.AgreementStats) *entity.AgreementStats {
	if stats.MonthlyRevenue == nil {
		stats.MonthlyRevenue = []entity.MonthlyRevenue{}
	}

	return stats
}
