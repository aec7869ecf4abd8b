package repository

import (
	"context"
	"errors"

	"bvs/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDigitalAgreementNotFound is returned when a digital agreement does not exist or is owned by someone else.
var ErrDigitalAgreementNotFound = errors.New("digital agreement not found")

// DigitalAgreementFilter narrows a listing.
type DigitalAgreementFilter struct {
	OwnerID uuid.UUID
	// Search is matched case-insensitively as a substring of client name or company.
	Search string
}

// DigitalAgreementRepository persists digital marketing agreements. Every method is scoped to an owner.
type DigitalAgreementRepository interface {
	Create(ctx context.Context, agreement *entity.DigitalAgreement) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.DigitalAgreement, error)
	List(ctx context.Context, filter DigitalAgreementFilter) ([]*entity.DigitalAgreement, error)
	Update(ctx context.Context, agreement *entity.DigitalAgreement) error
	UpdateStatus(ctx context.Context, id, ownerID uuid.UUID, status entity.DigitalAgreementStatus) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	Stats(ctx context.Context, ownerID uuid.UUID) (*entity.AgreementStats, error)
}
