// Package redis holds the Redis-backed stores.
package redis

import (
	"context"
	"log/slog"

	"bvs/config"
	"bvs/internal/domain/lifecycle"
	"bvs/internal/domain/repository"
	"bvs/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result publishes the Redis OTP store under a name the transaction manager looks up.
// Store is nil when OTPs are kept in postgres.
type Result struct {
	fx.Out

	Store repository.OTPRepository `name:"externalOTPStore"`
}

// NewExternalOTPStore connects to Redis when otp.store is "redis".
func NewExternalOTPStore(params Params) (Result, error) {
	if params.Config.OTP == nil || params.Config.OTP.Store != config.OTPStoreRedis {
		return Result{}, nil
	}
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		return Result{}, errors.New("redis configuration is required when otp.store is redis")
	}

	client := NewClient(params.Config.Redis)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("OTP store connected", slog.String("store", config.OTPStoreRedis))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return Result{Store: NewOTPRepository(client)}, nil
}

// NewClient builds a go-redis client from configuration.
func NewClient(cfg *config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})
}
