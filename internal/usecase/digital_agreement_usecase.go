package usecase

import (
	"context"
	"time"

	"bvs/internal/domain/entity"

	"github.com/google/uuid"
)

// DigitalAgreementInput is the writable shape of a digital agreement, shared by create and update.
// Provider identity is not part of it.
type DigitalAgreementInput struct {
	ClientName         string
	ClientCompany      string
	ClientAddress      string
	Services           []entity.ServiceItem
	AdditionalServices []entity.ServiceItem
	StartDate          *time.Time
	EndDate            *time.Time
	Platforms          []string
	TravelAllowance    bool
	DroneShoot         bool
	Notes              string
	Status             string
}

// DigitalAgreementUsecase manages the caller's digital marketing agreements.
type DigitalAgreementUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input *DigitalAgreementInput) (*entity.DigitalAgreement, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.DigitalAgreement, error)
	List(ctx context.Context, ownerID uuid.UUID, search string) ([]*entity.DigitalAgreement, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input *DigitalAgreementInput) (*entity.DigitalAgreement, error)
	UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status string) (*entity.DigitalAgreement, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	Stats(ctx context.Context, ownerID uuid.UUID) (*entity.AgreementStats, error)
	QRCode(ctx context.Context, ownerID, id uuid.UUID) ([]byte, error)
}
