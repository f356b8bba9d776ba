package main

import (
	"context"
	"log/slog"
	"os"

	"bizradar/config"
	"bizradar/internal/delivery"
	"bizradar/internal/delivery/http"
	"bizradar/internal/delivery/http/middleware"
	"bizradar/internal/delivery/http/router/handler"
	"bizradar/internal/infra/alert"
	"bizradar/internal/infra/foursquare"
	logs "bizradar/internal/infra/log"
	"bizradar/internal/infra/persistence/postgres"
	"bizradar/internal/infra/pubsub"
	"bizradar/internal/usecase"
	"bizradar/internal/usecase/impl"

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
			startMonitoring,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewBusinessRepository,
			postgres.NewSettingsRepository,
			postgres.NewNotificationRepository,
			postgres.NewScanRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			foursquare.NewClient,
			alert.NewAlertSink,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewScanService,
			impl.NewMonitorService,
			impl.NewNotificationService,
			impl.NewSettingsService,
			impl.NewBusinessService,
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
			handler.NewMonitorHandler,
			handler.NewSettingsHandler,
			handler.NewNotificationHandler,
			handler.NewBusinessHandler,
			handler.NewScanHandler,
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

// startMonitoring brings the scheduler up at boot when the stored settings
// allow it. A refusal (paused, no settings yet) is not fatal; the operator
// can start it later over the API.
func startMonitoring(ctx context.Context, logger *slog.Logger, monitor usecase.MonitorUsecase) {
	if err := monitor.Start(ctx); err != nil {
		logger.Warn("Monitoring not started at boot", slog.Any("error", err))
	}
}
