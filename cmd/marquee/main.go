package main

import (
	"context"
	"log/slog"
	"os"

	"marquee/config"
	"marquee/internal/delivery"
	"marquee/internal/delivery/http"
	"marquee/internal/delivery/http/middleware"
	"marquee/internal/delivery/http/router/handler"
	"marquee/internal/infra/auth"
	"marquee/internal/infra/clock"
	logs "marquee/internal/infra/log"
	"marquee/internal/infra/persistence/postgres"
	"marquee/internal/usecase"
	"marquee/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCartRepository,
			postgres.NewCatalogRepository,
			postgres.NewOrderRepository,
			postgres.NewPurchaseRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			clock.NewSystemClock,
			newRentalPolicy,
		),
	)
}

// newRentalPolicy lifts the configured rental window into the checkout policy.
func newRentalPolicy(cfg *config.Config) usecase.RentalPolicy {
	return usecase.RentalPolicy{Duration: cfg.Rental.Duration}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewEntitlementService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewEntitlementHandler,
			handler.NewCatalogHandler,
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
