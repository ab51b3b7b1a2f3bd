package main

import (
	"context"
	"log/slog"
	"os"

	"bloodcare/config"
	"bloodcare/internal/delivery"
	"bloodcare/internal/delivery/http"
	"bloodcare/internal/delivery/http/middleware"
	"bloodcare/internal/delivery/http/router/handler"
	"bloodcare/internal/domain/service"
	"bloodcare/internal/infra/auth"
	logs "bloodcare/internal/infra/log"
	"bloodcare/internal/infra/mailer"
	"bloodcare/internal/infra/persistence/postgres"
	"bloodcare/internal/infra/presence"
	"bloodcare/internal/usecase/impl"
	"bloodcare/internal/worker"

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
		mailer.New,
		fx.Annotate(
			presence.NewHub,
			fx.As(new(service.Notifier)),
			fx.As(fx.Self()),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewLocationRepository,
			postgres.NewOtpRepository,
			postgres.NewRequestRepository,
			postgres.NewInventoryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOtpService,
			impl.NewLocationService,
			impl.NewRequestService,
			impl.NewApprovalService,
			impl.NewUserService,
			impl.NewInventoryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewOtpHandler,
			handler.NewLocationHandler,
			handler.NewRequestHandler,
			handler.NewAdminHandler,
			handler.NewInventoryHandler,
			handler.NewSocketHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewEligibilityWorker,
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
