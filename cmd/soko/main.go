package main

import (
	"context"
	"log/slog"
	"os"

	"soko/config"
	"soko/internal/delivery"
	"soko/internal/delivery/api"
	"soko/internal/delivery/api/middleware"
	"soko/internal/delivery/api/router/handler"
	"soko/internal/domain/lifecycle"
	"soko/internal/infra/auth"
	"soko/internal/infra/cache"
	"soko/internal/infra/inference"
	logs "soko/internal/infra/log"
	"soko/internal/infra/persistence/postgres"
	"soko/internal/infra/pubsub"
	"soko/internal/infra/similarity"
	"soko/internal/infra/storage"
	"soko/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
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
			requirePostGIS,
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
		cache.New,
		storage.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewBusinessRepository,
			postgres.NewProductRepository,
			postgres.NewServiceRepository,
			postgres.NewAvailabilityRepository,
			postgres.NewCategoryRepository,
			postgres.NewServiceRequestRepository,
			postgres.NewReviewRepository,
			postgres.NewTransactionManager,
			cache.NewTagJobStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			inference.NewClient,
			inference.NewSwahiliDetector,
			inference.NewDescriber,
			inference.NewZeroShotTagger,
			similarity.NewTFIDF,
			pubsub.NewTagJobPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewBusinessService,
			impl.NewProductService,
			impl.NewServiceService,
			impl.NewAvailabilityService,
			impl.NewCategoryService,
			impl.NewServiceRequestService,
			impl.NewReviewService,
			impl.NewEnrichmentService,
			impl.NewTagJobService,
			// With the inline provider the publisher runs jobs in-process.
			impl.NewTagJobRunner,
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
			handler.NewUserHandler,
			handler.NewBusinessHandler,
			handler.NewProductHandler,
			handler.NewServiceHandler,
			handler.NewAvailabilityHandler,
			handler.NewMarketplaceHandler,
			handler.NewEnrichmentHandler,
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

// requirePostGIS refuses to start the API against a database the migrate
// command has not prepared.
func requirePostGIS(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return postgres.VerifyPostGIS(ctx, db)
		},
	})
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
