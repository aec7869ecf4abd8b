package handler

import (
	"net/http"

	"bvs/internal/delivery/api/response"
	"bvs/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the caller's own account under /api/users.
type UserHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(profileUC usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{profileUC: profileUC}
}

// GetProfile returns the caller's account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// UpdateProfile renames the caller's account.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{Name: req.Name})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile updated successfully")
}

// ChangePassword replaces the caller's password and signs out every session.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	err = h.profileUC.ChangePassword(c.Request().Context(), userID, &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Password changed successfully")
}
