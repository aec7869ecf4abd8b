package usecase

import (
	"context"
	"time"

	"bvs/internal/domain/entity"

	"github.com/google/uuid"
)

// AgreementInput is the writable shape of a standard agreement, shared by create and update.
// Nil pointers and an empty Status mean the field was not supplied.
type AgreementInput struct {
	ClientName    string
	ClientCompany string
	Services      []entity.ServiceItem
	WarrantyYears *int
	StartDate     *time.Time
	EndDate       *time.Time
	Notes         string
	Status        string
}

// AgreementUsecase manages the caller's standard agreements.
// Every operation is scoped to ownerID; rows of other owners behave as missing.
type AgreementUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input *AgreementInput) (*entity.Agreement, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.Agreement, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Agreement, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input *AgreementInput) (*entity.Agreement, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	Stats(ctx context.Context, ownerID uuid.UUID) (*entity.AgreementStats, error)
	QRCode(ctx context.Context, ownerID, id uuid.UUID) ([]byte, error)
}
