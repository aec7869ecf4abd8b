package handler

import (
	"bytes"
	"encoding/json"
	"time"

	"bvs/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const dateLayout = time.DateOnly

// Date accepts either a calendar date ("2024-03-15") or an RFC 3339 timestamp.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "date must be a string")
	}

	if t, err := time.Parse(dateLayout, raw); err == nil {
		d.Time = t.UTC()

		return nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return errors.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", raw)
	}
	d.Time = t.UTC()

	return nil
}

func (d *Date) ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time

	return &t
}

// --- Auth ---

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

// VerifyOTPRequest is the body of POST /api/auth/verify-otp.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"len=6"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest is the body of POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the body of POST /api/auth/reset-password.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"len=6"`
	NewPassword string `json:"newPassword" validate:"min=6"`
}

// RefreshTokenRequest is the body of the refresh and logout endpoints.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// --- Users ---

// UpdateProfileRequest is the body of PUT /api/users/profile.
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required"`
}

// ChangePasswordRequest is the body of PUT /api/users/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"min=6"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Roles()[0].String(),
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

// LoginResponse carries the token pair and the account summary.
type LoginResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         LoginUserInfo `json:"user"`
}

// LoginUserInfo is the account summary returned at login.
type LoginUserInfo struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// --- Agreements ---

// ServiceItemRequest is one billable line. Cost is required; 0 is a valid cost.
type ServiceItemRequest struct {
	Description string   `json:"description"`
	Cost        *float64 `json:"cost" validate:"required"`
}

// AdditionalServiceRequest is an optional extra line of a digital agreement.
// Lines without a description are dropped later, so only described lines need a cost.
type AdditionalServiceRequest struct {
	Description string   `json:"description"`
	Cost        *float64 `json:"cost" validate:"required_with=Description"`
}

func toServiceItem(description string, cost *float64) entity.ServiceItem {
	item := entity.ServiceItem{Description: description}
	if cost != nil {
		item.Cost = *cost
	}

	return item
}

func toServiceItems(items []ServiceItemRequest) []entity.ServiceItem {
	if items == nil {
		return nil
	}

	return mapSlice(items, func(item ServiceItemRequest) entity.ServiceItem {
		return toServiceItem(item.Description, item.Cost)
	})
}

func toAdditionalServiceItems(items []AdditionalServiceRequest) []entity.ServiceItem {
	if items == nil {
		return nil
	}

	return mapSlice(items, func(item AdditionalServiceRequest) entity.ServiceItem {
		return toServiceItem(item.Description, item.Cost)
	})
}

// AgreementRequest is the body of agreement create and update.
type AgreementRequest struct {
	ClientName    string               `json:"clientName"`
	ClientCompany string               `json:"clientCompany"`
	Services      []ServiceItemRequest `json:"services" validate:"dive"`
	WarrantyYears *int                 `json:"warrantyYears"`
	StartDate     *Date                `json:"startDate"`
	EndDate       *Date                `json:"endDate"`
	Notes         string               `json:"notes"`
	Status        string               `json:"status"`
}

// AgreementResponse is the JSON view of a standard agreement.
type AgreementResponse struct {
	ID            uuid.UUID            `json:"id"`
	ClientName    string               `json:"clientName"`
	ClientCompany string               `json:"clientCompany"`
	Services      []entity.ServiceItem `json:"services"`
	TotalCost     float64              `json:"totalCost"`
	WarrantyYears int                  `json:"warrantyYears"`
	StartDate     time.Time            `json:"startDate"`
	EndDate       time.Time            `json:"endDate"`
	Notes         string               `json:"notes"`
	Status        string               `json:"status"`
	CreatedBy     uuid.UUID            `json:"createdBy"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

func toAgreementResponse(a *entity.Agreement) *AgreementResponse {
	return &AgreementResponse{
		ID:            a.ID,
		ClientName:    a.ClientName,
		ClientCompany: a.ClientCompany,
		Services:      nonNilServices(a.Services),
		TotalCost:     a.TotalCost,
		WarrantyYears: a.WarrantyYears,
		StartDate:     a.StartDate,
		EndDate:       a.EndDate,
		Notes:         a.Notes,
		Status:        string(a.Status),
		CreatedBy:     a.CreatedBy,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// DigitalAgreementRequest is the body of digital agreement create and update.
type DigitalAgreementRequest struct {
	ClientName         string                     `json:"clientName"`
	ClientCompany      string                     `json:"clientCompany"`
	ClientAddress      string                     `json:"clientAddress"`
	Services           []ServiceItemRequest       `json:"services" validate:"dive"`
	AdditionalServices []AdditionalServiceRequest `json:"additionalServices" validate:"dive"`
	StartDate          *Date                      `json:"startDate"`
	EndDate            *Date                      `json:"endDate"`
	Platforms          []string                   `json:"platforms"`
	TravelAllowance    bool                       `json:"travelAllowance"`
	DroneShoot         bool                       `json:"droneShoot"`
	Notes              string                     `json:"notes"`
	Status             string                     `json:"status"`
}

// UpdateStatusRequest is the body of PATCH /api/digital-agreements/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// DigitalAgreementResponse is the JSON view of a digital agreement.
type DigitalAgreementResponse struct {
	ID                 uuid.UUID            `json:"id"`
	ClientName         string               `json:"clientName"`
	ClientCompany      string               `json:"clientCompany"`
	ClientAddress      string               `json:"clientAddress"`
	ProviderName       string               `json:"providerName"`
	ProviderCompany    string               `json:"providerCompany"`
	ProviderAddress    string               `json:"providerAddress"`
	Services           []entity.ServiceItem `json:"services"`
	AdditionalServices []entity.ServiceItem `json:"additionalServices"`
	TotalCost          float64              `json:"totalCost"`
	StartDate          time.Time            `json:"startDate"`
	EndDate            time.Time            `json:"endDate"`
	Platforms          []entity.Platform    `json:"platforms"`
	TravelAllowance    bool                 `json:"travelAllowance"`
	DroneShoot         bool                 `json:"droneShoot"`
	Notes              string               `json:"notes"`
	Status             string               `json:"status"`
	CreatedBy          uuid.UUID            `json:"createdBy"`
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt"`
}

func toDigitalAgreementResponse(d *entity.DigitalAgreement) *DigitalAgreementResponse {
	platforms := d.Platforms
	if platforms == nil {
		platforms = []entity.Platform{}
	}

	return &DigitalAgreementResponse{
		ID:                 d.ID,
		ClientName:         d.ClientName,
		ClientCompany:      d.ClientCompany,
		ClientAddress:      d.ClientAddress,
		ProviderName:       d.Provider.Name,
		ProviderCompany:    d.Provider.Company,
		ProviderAddress:    d.Provider.Address,
		Services:           nonNilServices(d.Services),
		AdditionalServices: nonNilServices(d.AdditionalServices),
		TotalCost:          d.TotalCost,
		StartDate:          d.StartDate,
		EndDate:            d.EndDate,
		Platforms:          platforms,
		TravelAllowance:    d.TravelAllowance,
		DroneShoot:         d.DroneShoot,
		Notes:              d.Notes,
		Status:             string(d.Status),
		CreatedBy:          d.CreatedBy,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func nonNilServices(items []entity.ServiceItem) []entity.ServiceItem {
	if items == nil {
		return []entity.ServiceItem{}
	}

	return items
}

func mapSlice[S any, T any](items []S, fn func(S) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}
