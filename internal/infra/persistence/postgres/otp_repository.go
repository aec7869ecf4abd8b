package postgres

import (
	"context"
	"time"

	"bvs/internal/domain/entity"
	domainerrors "bvs/internal/domain/errors"
	"bvs/internal/domain/repository"
	"bvs/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type otpRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewOTPRepository returns an OTP store backed by the one_time_passwords table.
func NewOTPRepository(db *gorm.DB) repository.OTPRepository {
	return &otpRepository{db: db, now: time.Now}
}

func (repo *otpRepository) Create(ctx context.Context, otp *entity.OneTimePassword) error {
	otpM := &model.OneTimePasswordModel{
		ID:        otp.ID,
		Email:     otp.Email,
		Code:      otp.Code,
		Purpose:   string(otp.Purpose),
		ExpiresAt: otp.ExpiresAt,
		CreatedAt: otp.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(otpM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create otp")
	}

	otp.ID = otpM.ID
	otp.CreatedAt = otpM.CreatedAt

	return nil
}

// Consume deletes every unexpired row for the pair in one statement. Concurrent callers
// race on the row lock, and only the one whose DELETE removed rows wins.
func (repo *otpRepository) Consume(ctx context.Context, email, code string) error {
	result := repo.db.WithContext(ctx).
		Where("email = ? AND code = ? AND expires_at > ?", email, code, repo.now()).
		Delete(&model.OneTimePasswordModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume otp")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOTPNotFound
	}

	return nil
}

func (repo *otpRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", repo.now()).
		Delete(&model.OneTimePasswordModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired otps")
	}

	return result.RowsAffected, nil
}
