package postgres

import (
	"context"
	"time"

	"bvs/internal/domain/entity"
	domainerrors "bvs/internal/domain/errors"
	"bvs/internal/domain/repository"
	"bvs/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type agreementRepository struct {
	db *gorm.DB
}

// NewAgreementRepository returns an AgreementRepository backed by the agreements table.
func NewAgreementRepository(db *gorm.DB) repository.AgreementRepository {
	return &agreementRepository{db: db}
}

func (repo *agreementRepository) Create(ctx context.Context, agreement *entity.Agreement) error {
	agreementM := fromAgreementDomain(agreement)

	if err := repo.db.WithContext(ctx).Create(agreementM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("agreement violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create agreement")
	}

	agreement.ID = agreementM.ID
	agreement.CreatedAt = agreementM.CreatedAt
	agreement.UpdatedAt = agreementM.UpdatedAt

	return nil
}

func (repo *agreementRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Agreement, error) {
	var agreementM model.AgreementModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, ownerID).
		First(&agreementM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAgreementNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find agreement")
	}

	return toAgreementDomain(&agreementM), nil
}

func (repo *agreementRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Agreement, error) {
	var rows []model.AgreementModel
	err := repo.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list agreements")
	}

	agreements := make([]*entity.Agreement, 0, len(rows))
	for i := range rows {
		agreements = append(agreements, toAgreementDomain(&rows[i]))
	}

	return agreements, nil
}

func (repo *agreementRepository) Update(ctx context.Context, agreement *entity.Agreement) error {
	agreementM := fromAgreementDomain(agreement)
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.AgreementModel{}).
		Where("id = ? AND created_by = ?", agreement.ID, agreement.CreatedBy).
		Updates(map[string]any{
			"client_name":    agreementM.ClientName,
			"client_company": agreementM.ClientCompany,
			"services":       agreementM.Services,
			"total_cost":     agreementM.TotalCost,
			"warranty_years": agreementM.WarrantyYears,
			"start_date":     agreementM.StartDate,
			"end_date":       agreementM.EndDate,
			"notes":          agreementM.Notes,
			"status":         agreementM.Status,
			"updated_at":     now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update agreement")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAgreementNotFound
	}

	agreement.UpdatedAt = now

	return nil
}

func (repo *agreementRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, ownerID).
		Delete(&model.AgreementModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete agreement")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAgreementNotFound
	}

	return nil
}

func (repo *agreementRepository) Stats(ctx context.Context, ownerID uuid.UUID) (*entity.AgreementStats, error) {
	return queryStats(ctx, repo.db, &model.AgreementModel{}, ownerID, string(entity.AgreementStatusActive))
}

func toAgreementDomain(data *model.AgreementModel) *entity.Agreement {
	return &entity.Agreement{
		ID:            data.ID,
		ClientName:    data.ClientName,
		ClientCompany: data.ClientCompany,
		Services:      toServiceItemsDomain(data.Services),
		TotalCost:     data.TotalCost,
		WarrantyYears: data.WarrantyYears,
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		Notes:         data.Notes,
		Status:        entity.AgreementStatus(data.Status),
		CreatedBy:     data.CreatedBy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromAgreementDomain(data *entity.Agreement) *model.AgreementModel {
	return &model.AgreementModel{
		ID:            data.ID,
		ClientName:    data.ClientName,
		ClientCompany: data.ClientCompany,
		Services:      fromServiceItemsDomain(data.Services),
		TotalCost:     data.TotalCost,
		WarrantyYears: data.WarrantyYears,
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		Notes:         data.Notes,
		Status:        string(data.Status),
		CreatedBy:     data.CreatedBy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toServiceItemsDomain(items []model.ServiceItemModel) []entity.ServiceItem {
	result := make([]entity.ServiceItem, 0, len(items))
	for _, item := range items {
		result = append(result, entity.ServiceItem{Description: item.Description, Cost: item.Cost})
	}

	return result
}

func fromServiceItemsDomain(items []entity.ServiceItem) []model.ServiceItemModel {
	result := make([]model.ServiceItemModel, 0, len(items))
	for _, item := range items {
		result = append(result, model.ServiceItemModel{Description: item.Description, Cost: item.Cost})
	}

	return result
}
