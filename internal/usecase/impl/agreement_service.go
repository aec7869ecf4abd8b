package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bvs/internal/delivery/context"
	"bvs/internal/domain/entity"
	domainerrors "bvs/internal/domain/errors"
	"bvs/internal/domain/repository"
	"bvs/internal/domain/service"
	"bvs/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type agreementService struct {
	agreementRepo repository.AgreementRepository
	qrService     service.QRCodeService
	publisher     service.EventPublisher
	logger        *slog.Logger
	now           func() time.Time
}

// AgreementServiceParams holds dependencies for AgreementService, injected by Fx.
type AgreementServiceParams struct {
	fx.In

	AgreementRepo repository.AgreementRepository
	QRService     service.QRCodeService
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewAgreementService creates the standard agreement use case.
func NewAgreementService(params AgreementServiceParams) usecase.AgreementUsecase {
	return &agreementService{
		agreementRepo: params.AgreementRepo,
		qrService:     params.QRService,
		publisher:     params.Publisher,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *agreementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the input, derives totals and dates and stores the agreement under ownerID.
func (srv *agreementService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.AgreementInput) (*entity.Agreement, error) {
	if err := validateAgreementInput(input.ClientName, input.ClientCompany, input.Services, input.WarrantyYears, input.Status); err != nil {
		return nil, err
	}

	agreement := &entity.Agreement{
		ID:            uuid.New(),
		ClientName:    input.ClientName,
		ClientCompany: input.ClientCompany,
		Services:      input.Services,
		Notes:         input.Notes,
		Status:        entity.AgreementStatus(input.Status),
		CreatedBy:     ownerID,
	}
	if input.WarrantyYears != nil {
		agreement.WarrantyYears = *input.WarrantyYears
	}
	if input.StartDate != nil {
		agreement.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		agreement.EndDate = *input.EndDate
	}

	agreement.ApplyDefaults(srv.now())
	agreement.Recalculate()

	if err := srv.agreementRepo.Create(ctx, agreement); err != nil {
		return nil, errors.Wrap(err, "failed to create agreement")
	}

	srv.log(ctx).Info("Agreement created",
		slog.String("agreementID", agreement.ID.String()),
		slog.String("ownerID", ownerID.String()),
		slog.Float64("totalCost", agreement.TotalCost),
	)
	srv.publish(ctx, service.AgreementEventCreated, agreement)

	return agreement, nil
}

// Get returns an owned agreement.
func (srv *agreementService) Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.Agreement, error) {
	agreement, err := srv.agreementRepo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, translateAgreementError(err, "failed to get agreement")
	}

	return agreement, nil
}

// List returns the owner's agreements, newest first.
func (srv *agreementService) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Agreement, error) {
	agreements, err := srv.agreementRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agreements")
	}

	return agreements, nil
}

// Update replaces the mutable fields of an owned agreement.
// Omitted warranty and start date keep their stored values. An omitted end date keeps the
// stored one unless the start date or warranty changed, in which case it is derived again.
func (srv *agreementService) Update(ctx context.Context, ownerID, id uuid.UUID, input *usecase.AgreementInput) (*entity.Agreement, error) {
	if err := validateAgreementInput(input.ClientName, input.ClientCompany, input.Services, input.WarrantyYears, input.Status); err != nil {
		return nil, err
	}

	agreement, err := srv.agreementRepo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, translateAgreementError(err, "failed to load agreement for update")
	}

	agreement.ClientName = input.ClientName
	agreement.ClientCompany = input.ClientCompany
	agreement.Services = input.Services
	agreement.Notes = input.Notes

	termChanged := false
	if input.WarrantyYears != nil && *input.WarrantyYears != agreement.WarrantyYears {
		agreement.WarrantyYears = *input.WarrantyYears
		termChanged = true
	}
	if input.StartDate != nil && !input.StartDate.Equal(agreement.StartDate) {
		agreement.StartDate = *input.StartDate
		termChanged = true
	}
	switch {
	case input.EndDate != nil:
		agreement.EndDate = *input.EndDate
	case termChanged:
		agreement.EndDate = time.Time{}
	}
	if input.Status != "" {
		agreement.Status = entity.AgreementStatus(input.Status)
	}

	agreement.Recalculate()

	if err := srv.agreementRepo.Update(ctx, agreement); err != nil {
		return nil, translateAgreementError(err, "failed to update agreement")
	}

	srv.log(ctx).Info("Agreement updated", slog.String("agreementID", agreement.ID.String()))
	srv.publish(ctx, service.AgreementEventUpdated, agreement)

	return agreement, nil
}

// Delete removes an owned agreement.
func (srv *agreementService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := srv.agreementRepo.Delete(ctx, id, ownerID); err != nil {
		return translateAgreementError(err, "failed to delete agreement")
	}

	srv.log(ctx).Info("Agreement deleted", slog.String("agreementID", id.String()))
	srv.publish(ctx, service.AgreementEventDeleted, &entity.Agreement{ID: id, CreatedBy: ownerID})

	return nil
}

// Stats summarizes the owner's agreements.
func (srv *agreementService) Stats(ctx context.Context, ownerID uuid.UUID) (*entity.AgreementStats, error) {
	stats, err := srv.agreementRepo.Stats(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate agreements")
	}

	return stats, nil
}

// QRCode renders a QR code for an owned agreement.
func (srv *agreementService) QRCode(ctx context.Context, ownerID, id uuid.UUID) ([]byte, error) {
	if _, err := srv.Get(ctx, ownerID, id); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateAgreementQR(service.AgreementKindStandard, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate agreement QR code")
	}

	return png, nil
}

func (srv *agreementService) publish(ctx context.Context, eventType service.AgreementEventType, agreement *entity.Agreement) {
	publishAgreementEvent(ctx, srv.log(ctx), srv.publisher, &service.AgreementEvent{
		EventType:   eventType,
		AgreementID: agreement.ID.String(),
		Kind:        service.AgreementKindStandard,
		OwnerID:     agreement.CreatedBy.String(),
		TotalCost:   agreement.TotalCost,
		Status:      string(agreement.Status),
	})
}

func translateAgreementError(err error, msg string) error {
	if errors.Is(err, repository.ErrAgreementNotFound) {
		return errors.Wrap(domainerrors.ErrAgreementNotFound, msg)
	}

	return errors.Wrap(err, msg)
}
