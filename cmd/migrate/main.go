// Command migrate enables PostGIS and brings the schema up to date, then exits.
package main

import (
	"context"
	"log/slog"
	"os"

	"soko/config"
	"soko/internal/domain/lifecycle"
	logs "soko/internal/infra/log"
	"soko/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	app := fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(runMigrations),
	)

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to start migration", slog.Any("error", err))
		os.Exit(1)
	}

	<-app.Wait()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("Failed to stop cleanly", slog.Any("error", err))
	}
}

func runMigrations(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Postgres' own OnStart has pinged the pool by now.
			if err := postgres.Migrate(ctx, params.DB, params.Logger); err != nil {
				return err
			}

			return params.Shutdown()
		},
	})
}
