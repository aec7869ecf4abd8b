package postgres

import (
	"context"
	"strings"
	"time"

	"bvs/internal/domain/entity"
	domainerrors "bvs/internal/domain/errors"
	"bvs/internal/domain/repository"
	"bvs/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type digitalAgreementRepository struct {
	db *gorm.DB
}

// NewDigitalAgreementRepository returns a DigitalAgreementRepository backed by the digital_agreements table.
func NewDigitalAgreementRepository(db *gorm.DB) repository.DigitalAgreementRepository {
	return &digitalAgreementRepository{db: db}
}

func (repo *digitalAgreementRepository) Create(ctx context.Context, agreement *entity.DigitalAgreement) error {
	agreementM := fromDigitalAgreementDomain(agreement)

	if err := repo.db.WithContext(ctx).Create(agreementM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("digital agreement violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create digital agreement")
	}

	agreement.ID = agreementM.ID
	agreement.CreatedAt = agreementM.CreatedAt
	agreement.UpdatedAt = agreementM.UpdatedAt

	return nil
}

func (repo *digitalAgreementRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.DigitalAgreement, error) {
	var agreementM model.DigitalAgreementModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, ownerID).
		First(&agreementM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDigitalAgreementNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find digital agreement")
	}

	return toDigitalAgreementDomain(&agreementM), nil
}

func (repo *digitalAgreementRepository) List(ctx context.Context, filter repository.DigitalAgreementFilter) ([]*entity.DigitalAgreement, error) {
	query := repo.db.WithContext(ctx).Where("created_by = ?", filter.OwnerID)

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		query = query.Where("(client_name ILIKE ? OR client_company ILIKE ?)", pattern, pattern)
	}

	var rows []model.DigitalAgreementModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list digital agreements")
	}

	agreements := make([]*entity.DigitalAgreement, 0, len(rows))
	for i := range rows {
		agreements = append(agreements, toDigitalAgreementDomain(&rows[i]))
	}

	return agreements, nil
}

// Update replaces the client-editable columns. Provider identity columns are never rewritten.
func (repo *digitalAgreementRepository) Update(ctx context.Context, agreement *entity.DigitalAgreement) error {
	agreementM := fromDigitalAgreementDomain(agreement)
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.DigitalAgreementModel{}).
		Where("id = ? AND created_by = ?", agreement.ID, agreement.CreatedBy).
		Updates(map[string]any{
			"client_name":         agreementM.ClientName,
			"client_company":      agreementM.ClientCompany,
			"client_address":      agreementM.ClientAddress,
			"services":            agreementM.Services,
			"additional_services": agreementM.AdditionalServices,
			"total_cost":          agreementM.TotalCost,
			"start_date":          agreementM.StartDate,
			"end_date":            agreementM.EndDate,
			"platforms":           agreementM.Platforms,
			"travel_allowance":    agreementM.TravelAllowance,
			"drone_shoot":         agreementM.DroneShoot,
			"notes":               agreementM.Notes,
			"status":              agreementM.Status,
			"updated_at":          now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update digital agreement")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDigitalAgreementNotFound
	}

	agreement.UpdatedAt = now

	return nil
}

func (repo *digitalAgreementRepository) UpdateStatus(ctx context.Context, id, ownerID uuid.UUID, status entity.DigitalAgreementStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DigitalAgreementModel{}).
		Where("id = ? AND created_by = ?", id, ownerID).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update digital agreement status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDigitalAgreementNotFound
	}

	return nil
}

func (repo *digitalAgreementRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, ownerID).
		Delete(&model.DigitalAgreementModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete digital agreement")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDigitalAgreementNotFound
	}

	return nil
}

func (repo *digitalAgreementRepository) Stats(ctx context.Context, ownerID uuid.UUID) (*entity.AgreementStats, error) {
	return queryStats(ctx, repo.db, &model.DigitalAgreementModel{}, ownerID, string(entity.DigitalAgreementStatusActive))
}

func toDigitalAgreementDomain(data *model.DigitalAgreementModel) *entity.DigitalAgreement {
	platforms := make([]entity.Platform, 0, len(data.Platforms))
	for _, p := range data.Platforms {
		platforms = append(platforms, entity.Platform(p))
	}

	return &entity.DigitalAgreement{
		ID:            data.ID,
		ClientName:    data.ClientName,
		ClientCompany: data.ClientCompany,
		ClientAddress: data.ClientAddress,
		Provider: entity.Provider{
			Name:    data.ProviderName,
			Company: data.ProviderCompany,
			Address: data.ProviderAddress,
		},
		Services:           toServiceItemsDomain(data.Services),
		AdditionalServices: toServiceItemsDomain(data.AdditionalServices),
		TotalCost:          data.TotalCost,
		StartDate:          data.StartDate,
		EndDate:            data.EndDate,
		Platforms:          platforms,
		TravelAllowance:    data.TravelAllowance,
		DroneShoot:         data.DroneShoot,
		Notes:              data.Notes,
		Status:             entity.DigitalAgreementStatus(data.Status),
		CreatedBy:          data.CreatedBy,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromDigitalAgreementDomain(data *entity.DigitalAgreement) *model.DigitalAgreementModel {
	platforms := make([]string, 0, len(data.Platforms))
	for _, p := range data.Platforms {
		platforms = append(platforms, string(p))
	}

	return &model.DigitalAgreementModel{
		ID:                 data.ID,
		ClientName:         data.ClientName,
		ClientCompany:      data.ClientCompany,
		ClientAddress:      data.ClientAddress,
		ProviderName:       data.Provider.Name,
		ProviderCompany:    data.Provider.Company,
		ProviderAddress:    data.Provider.Address,
		Services:           fromServiceItemsDomain(data.Services),
		AdditionalServices: fromServiceItemsDomain(data.AdditionalServices),
		TotalCost:          data.TotalCost,
		StartDate:          data.StartDate,
		EndDate:            data.EndDate,
		Platforms:          platforms,
		TravelAllowance:    data.TravelAllowance,
		DroneShoot:         data.DroneShoot,
		Notes:              data.Notes,
		Status:             string(data.Status),
		CreatedBy:          data.CreatedBy,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
