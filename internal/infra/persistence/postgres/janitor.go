package postgres

import (
	"context"
	"log/slog"
	"time"

	"bvs/config"
	"bvs/internal/domain/repository"

	"go.uber.org/fx"
)

// JanitorParams holds dependencies for the expired credential purge, injected by Fx
type JanitorParams struct {
	fx.In
	fx.Lifecycle

	Config           *config.Config
	Logger           *slog.Logger
	OTPRepo          repository.OTPRepository
	RefreshTokenRepo repository.RefreshTokenRepository
}

// RegisterJanitor starts a background purge of expired OTPs and refresh tokens.
// A non-positive auth.cleanupInterval leaves it disabled.
func RegisterJanitor(params JanitorParams) {
	interval := time.Duration(0)
	if params.Config.Auth != nil {
		interval = params.Config.Auth.CleanupInterval
	}
	if interval <= 0 {
		params.Logger.Info("Expired credential cleanup disabled")

		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				runJanitor(ctx, params.Logger, params.OTPRepo, params.RefreshTokenRepo, interval)
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}

			return nil
		},
	})
}

func runJanitor(
	ctx context.Context,
	logger *slog.Logger,
	otpRepo repository.OTPRepository,
	refreshRepo repository.RefreshTokenRepository,
	interval time.Duration,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purgeExpired(ctx, logger, otpRepo, refreshRepo)
		}
	}
}

func purgeExpired(
	ctx context.Context,
	logger *slog.Logger,
	otpRepo repository.OTPRepository,
	refreshRepo repository.RefreshTokenRepository,
) {
	otps, err := otpRepo.DeleteExpired(ctx)
	if err != nil {
		logger.Warn("Failed to purge expired OTPs", slog.Any("error", err))
	}

	tokens, err := refreshRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		logger.Warn("Failed to purge expired refresh tokens", slog.Any("error", err))
	}

	if otps > 0 || tokens > 0 {
		logger.Info("Purged expired credentials",
			slog.Int64("otps", otps),
			slog.Int64("refreshTokens", tokens),
		)
	}
}
