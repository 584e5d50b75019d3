package main

import (
	"context"
	"log/slog"
	"os"

	"walletportal/config"
	"walletportal/internal/delivery"
	"walletportal/internal/delivery/api"
	"walletportal/internal/delivery/api/middleware"
	"walletportal/internal/delivery/api/router/handler"
	"walletportal/internal/infra/auth"
	logs "walletportal/internal/infra/log"
	"walletportal/internal/infra/metrics"
	"walletportal/internal/infra/persistence"
	"walletportal/internal/infra/qrcode"
	"walletportal/internal/infra/thirdweb"
	"walletportal/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
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
		metrics.NewRegistry,
		newProviderMetrics,
	)
}

// newProviderMetrics registers the provider collectors on the process registry.
func newProviderMetrics(reg *prometheus.Registry) (*metrics.ProviderMetrics, error) {
	return metrics.NewProviderMetrics(reg)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewTokenRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			thirdweb.New,
			auth.NewJWTService,
			qrcode.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionUsecase,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewAuthHandler,
			handler.NewWalletHandler,
			handler.NewUsersHandler,
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
