// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bvs/internal/domain/repository"
	"bvs/internal/errors"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db       *gorm.DB
	otpStore repository.OTPRepository
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx       *gorm.DB // In GORM, a transaction object is also a *gorm.DB
	otpStore repository.OTPRepository
}

// NewUserRepository creates a new user repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// NewOTPRepository returns the external OTP store when one is configured,
// otherwise a postgres OTP repository bound to the transaction.
func (f *gormRepositoryFactory) NewOTPRepository() repository.OTPRepository {
	if f.otpStore != nil {
		return f.otpStore
	}

	return NewOTPRepository(f.tx)
}

// NewRefreshTokenRepository creates a new refresh token repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(f.tx)
}

// TransactionManagerParams lets fx inject the external OTP store, which is nil unless configured.
type TransactionManagerParams struct {
	fx.In

	DB               *gorm.DB
	ExternalOTPStore repository.OTPRepository `name:"externalOTPStore" optional:"true"`
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(params TransactionManagerParams) repository.TransactionManager {
	return &gormTransactionManager{db: params.DB, otpStore: params.ExternalOTPStore}
}

// OTPStoreParams selects the OTP store used outside transactions.
type OTPStoreParams struct {
	fx.In

	DB               *gorm.DB
	ExternalOTPStore repository.OTPRepository `name:"externalOTPStore" optional:"true"`
}

// NewOTPStore returns the external OTP store when one is configured, otherwise the postgres one.
func NewOTPStore(params OTPStoreParams) repository.OTPRepository {
	if params.ExternalOTPStore != nil {
		return params.ExternalOTPStore
	}

	return NewOTPRepository(params.DB)
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Transactions always run on the primary.
	tx := tm.db.WithContext(ctx).Clauses(dbresolver.Write).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back and re-panic so the recover middleware still sees the panic.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx, otpStore: tm.otpStore}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err // Return the original business error.
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
