package usecase

import (
	"context"

	"bvs/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
}

// UpdateProfileInput defines the editable profile fields.
type UpdateProfileInput struct {
	Name string
}

// ChangePasswordInput defines the data required to change a known password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}
