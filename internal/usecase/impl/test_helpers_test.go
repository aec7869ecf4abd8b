package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bvs/config"
	domainerrors "bvs/internal/domain/errors"
	"bvs/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const txFuncType = "func(repository.RepositoryFactory) error"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			OTPTTL:     10 * time.Minute,
		},
		Provider: &config.ProviderConfig{
			Name:    "K. KRISHNA TEJA",
			Company: "BUSINESS VICTORY SOLUTIONS",
			Address: "NELLORE, Ramalingapuram main road",
		},
	}
}

// runInTx makes a mocked TransactionManager invoke the callback with the given factory
// and propagate its result, as the real one does on rollback.
func runInTx(factory repository.RepositoryFactory) func(context.Context, func(repository.RepositoryFactory) error) error {
	return func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
		return fn(factory)
	}
}

func requireAppError(t *testing.T, err error, target error) domainerrors.AppError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, target)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError in %v", err)

	return appErr
}

func intPtr(v int) *int {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
