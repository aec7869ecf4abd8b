package main

import (
	"context"
	"log/slog"
	"os"

	"bvs/config"
	"bvs/internal/delivery"
	"bvs/internal/delivery/api"
	"bvs/internal/delivery/api/middleware"
	"bvs/internal/delivery/api/router/handler"
	"bvs/internal/infra/auth"
	logs "bvs/internal/infra/log"
	"bvs/internal/infra/mail"
	"bvs/internal/infra/persistence/postgres"
	"bvs/internal/infra/persistence/redis"
	"bvs/internal/infra/pubsub"
	"bvs/internal/infra/qrcode"
	"bvs/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			postgres.RegisterJanitor,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		redis.NewExternalOTPStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAgreementRepository,
			postgres.NewDigitalAgreementRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewOTPStore,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewOTPGenerator,
			mail.NewMailer,
			qrcode.ProvideQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewAgreementService,
			impl.NewDigitalAgreementService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			api.NewMetrics,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewAgreementHandler,
			handler.NewDigitalAgreementHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
