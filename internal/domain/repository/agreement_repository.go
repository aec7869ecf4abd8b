package repository

import (
	"context"
	"errors"

	"bvs/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAgreementNotFound is returned when an agreement does not exist or is owned by someone else.
var ErrAgreementNotFound = errors.New("agreement not found")

// AgreementRepository persists standard agreements. Every method is scoped to an owner.
type AgreementRepository interface {
	// Create persists a new agreement.
	Create(ctx context.Context, agreement *entity.Agreement) error

	// FindByID returns the agreement only when it is owned by ownerID.
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Agreement, error)

	// ListByOwner returns the owner's agreements, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Agreement, error)

	// Update replaces the mutable fields of an owned agreement.
	Update(ctx context.Context, agreement *entity.Agreement) error

	// Delete removes an owned agreement.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error

	// Stats aggregates the owner's agreements; "active" rows are counted into ActiveAgreements.
	Stats(ctx context.Context, ownerID uuid.UUID) (*entity.AgreementStats, error)
}
