package main

import (
	"context"
	"log/slog"
	"os"

	"mescontacts/config"
	"mescontacts/internal/delivery"
	"mescontacts/internal/delivery/api"
	"mescontacts/internal/delivery/api/middleware"
	"mescontacts/internal/delivery/api/router/handler"
	"mescontacts/internal/delivery/worker"
	"mescontacts/internal/domain/service"
	"mescontacts/internal/infra/auth"
	"mescontacts/internal/infra/cache"
	"mescontacts/internal/infra/export"
	logs "mescontacts/internal/infra/log"
	"mescontacts/internal/infra/metrics"
	"mescontacts/internal/infra/persistence/postgres"
	"mescontacts/internal/infra/pubsub"
	"mescontacts/internal/infra/qrcode"
	"mescontacts/internal/usecase/impl"

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
		service.SystemClock,
		fx.Annotate(
			metrics.NewCollector,
			fx.As(fx.Self()),
			fx.As(new(service.LedgerMetrics)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityVerifier,
			pubsub.NewEventPublisher,
			qrcode.NewQRCodeService,
			export.NewLedgerExporter,
			cache.NewStatsCache,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthGate,
			impl.NewUserService,
			impl.NewOrganizationService,
			impl.NewPostService,
			impl.NewPaymentService,
			impl.NewStatusHistoryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPostHandler,
			handler.NewPaymentHandler,
			handler.NewHistoryHandler,
			handler.NewUserHandler,
			handler.NewOrganizationHandler,
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
			fx.Annotate(
				worker.NewExpirySweeper,
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
