package impl

import (
	"context"
	"log/slog"
	"strings"

	"bvs/config"
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

type digitalAgreementService struct {
	agreementRepo repository.DigitalAgreementRepository
	qrService     service.QRCodeService
	publisher     service.EventPublisher
	provider      entity.Provider
	logger        *slog.Logger
}

// DigitalAgreementServiceParams holds dependencies for DigitalAgreementService, injected by Fx.
type DigitalAgreementServiceParams struct {
	fx.In

	AgreementRepo repository.DigitalAgreementRepository
	QRService     service.QRCodeService
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewDigitalAgreementService creates the digital agreement use case.
// The provider identity printed on every agreement comes from the provider config section.
func NewDigitalAgreementService(params DigitalAgreementServiceParams) usecase.DigitalAgreementUsecase {
	var provider entity.Provider
	if params.Config != nil && params.Config.Provider != nil {
		provider = entity.Provider{
			Name:    params.Config.Provider.Name,
			Company: params.Config.Provider.Company,
			Address: params.Config.Provider.Address,
		}
	}

	return &digitalAgreementService{
		agreementRepo: params.AgreementRepo,
		qrService:     params.QRService,
		publisher:     params.Publisher,
		provider:      provider,
		logger:        params.Logger,
	}
}

func (srv *digitalAgreementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateDigitalInput(input *usecase.DigitalAgreementInput) error {
	return validateDigitalAgreementInput(
		input.ClientName, input.ClientCompany, input.ClientAddress,
		input.Services, input.AdditionalServices,
		input.StartDate, input.EndDate,
		input.Platforms,
		input.Status,
	)
}

func toPlatforms(values []string) []entity.Platform {
	platforms := make([]entity.Platform, 0, len(values))
	for _, v := range values {
		platforms = append(platforms, entity.Platform(v))
	}

	return platforms
}

// applyInput copies the client-controlled fields. Provider identity and ownership are left alone.
func applyInput(agreement *entity.DigitalAgreement, input *usecase.DigitalAgreementInput) {
	agreement.ClientName = input.ClientName
	agreement.ClientCompany = input.ClientCompany
	agreement.ClientAddress = input.ClientAddress
	agreement.Services = input.Services
	agreement.AdditionalServices = input.AdditionalServices
	agreement.StartDate = *input.StartDate
	agreement.EndDate = *input.EndDate
	agreement.Platforms = toPlatforms(input.Platforms)
	agreement.TravelAllowance = input.TravelAllowance
	agreement.DroneShoot = input.DroneShoot
	agreement.Notes = input.Notes
	if input.Status != "" {
		agreement.Status = entity.DigitalAgreementStatus(input.Status)
	}
}

// Create validates the input, stamps the provider identity and stores the agreement under ownerID.
func (srv *digitalAgreementService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.DigitalAgreementInput) (*entity.DigitalAgreement, error) {
	if err := validateDigitalInput(input); err != nil {
		return nil, err
	}

	agreement := &entity.DigitalAgreement{
		ID:        uuid.New(),
		Provider:  srv.provider,
		CreatedBy: ownerID,
	}
	applyInput(agreement, input)
	agreement.ApplyDefaults()
	agreement.Recalculate()

	if err := srv.agreementRepo.Create(ctx, agreement); err != nil {
		return nil, errors.Wrap(err, "failed to create digital agreement")
	}

	srv.log(ctx).Info("Digital agreement created",
		slog.String("agreementID", agreement.ID.String()),
		slog.String("ownerID", ownerID.String()),
		slog.Float64("totalCost", agreement.TotalCost),
	)
	srv.publish(ctx, service.AgreementEventCreated, agreement)

	return agreement, nil
}

// Get returns an owned digital agreement.
func (srv *digitalAgreementService) Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.DigitalAgreement, error) {
	agreement, err := srv.agreementRepo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, translateDigitalAgreementError(err, "failed to get digital agreement")
	}

	return agreement, nil
}

// List returns the owner's digital agreements, optionally narrowed by a client name or company search.
func (srv *digitalAgreementService) List(ctx context.Context, ownerID uuid.UUID, search string) ([]*entity.DigitalAgreement, error) {
	agreements, err := srv.agreementRepo.List(ctx, repository.DigitalAgreementFilter{
		OwnerID: ownerID,
		Search:  strings.TrimSpace(search),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list digital agreements")
	}

	return agreements, nil
}

// Update replaces the client-controlled fields of an owned digital agreement.
func (srv *digitalAgreementService) Update(ctx context.Context, ownerID, id uuid.UUID, input *usecase.DigitalAgreementInput) (*entity.DigitalAgreement, error) {
	if err := validateDigitalInput(input); err != nil {
		return nil, err
	}

	agreement, err := srv.agreementRepo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, translateDigitalAgreementError(err, "failed to load digital agreement for update")
	}

	applyInput(agreement, input)
	agreement.ApplyDefaults()
	agreement.Recalculate()

	if err := srv.agreementRepo.Update(ctx, agreement); err != nil {
		return nil, translateDigitalAgreementError(err, "failed to update digital agreement")
	}

	srv.log(ctx).Info("Digital agreement updated", slog.String("agreementID", agreement.ID.String()))
	srv.publish(ctx, service.AgreementEventUpdated, agreement)

	return agreement, nil
}

// UpdateStatus sets only the status. An unknown status is rejected before the row is looked up.
func (srv *digitalAgreementService) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status string) (*entity.DigitalAgreement, error) {
	next := entity.DigitalAgreementStatus(status)
	if !next.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(domainerrors.FieldErrors{
			"status": "must be one of Draft, Active, Completed, Terminated, Expired",
		})
	}

	if err := srv.agreementRepo.UpdateStatus(ctx, id, ownerID, next); err != nil {
		return nil, translateDigitalAgreementError(err, "failed to update digital agreement status")
	}

	agreement, err := srv.agreementRepo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, translateDigitalAgreementError(err, "failed to reload digital agreement")
	}

	srv.log(ctx).Info("Digital agreement status changed",
		slog.String("agreementID", id.String()),
		slog.String("status", status),
	)
	srv.publish(ctx, service.AgreementEventStatusChanged, agreement)

	return agreement, nil
}

// Delete removes an owned digital agreement.
func (srv *digitalAgreementService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := srv.agreementRepo.Delete(ctx, id, ownerID); err != nil {
		return translateDigitalAgreementError(err, "failed to delete digital agreement")
	}

	srv.log(ctx).Info("Digital agreement deleted", slog.String("agreementID", id.String()))
	srv.publish(ctx, service.AgreementEventDeleted, &entity.DigitalAgreement{ID: id, CreatedBy: ownerID})

	return nil
}

// Stats summarizes the owner's digital agreements; "Active" rows count as active.
func (srv *digitalAgreementService) Stats(ctx context.Context, ownerID uuid.UUID) (*entity.AgreementStats, error) {
	stats, err := srv.agreementRepo.Stats(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate digital agreements")
	}

	return stats, nil
}

// QRCode renders a QR code for an owned digital agreement.
func (srv *digitalAgreementService) QRCode(ctx context.Context, ownerID, id uuid.UUID) ([]byte, error) {
	if _, err := srv.Get(ctx, ownerID, id); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateAgreementQR(service.AgreementKindDigital, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate digital agreement QR code")
	}

	return png, nil
}

func (srv *digitalAgreementService) publish(ctx context.Context, eventType service.AgreementEventType, agreement *entity.DigitalAgreement) {
	publishAgreementEvent(ctx, srv.log(ctx), srv.publisher, &service.AgreementEvent{
		EventType:   eventType,
		AgreementID: agreement.ID.String(),
		Kind:        service.AgreementKindDigital,
		OwnerID:     agreement.CreatedBy.String(),
		TotalCost:   agreement.TotalCost,
		Status:      string(agreement.Status),
	})
}

func translateDigitalAgreementError(err error, msg string) error {
	if errors.Is(err, repository.ErrDigitalAgreementNotFound) {
		return errors.Wrap(domainerrors.ErrDigitalAgreementNotFound, msg)
	}

	return errors.Wrap(err, msg)
}
