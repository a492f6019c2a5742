package postgres

import (
	"context"
	"log/slog"

	"soko/internal/errors"
	"soko/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate installs PostGIS and brings the schema up to date. Location columns
// get GIST indexes through their gorm tags.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	tx := db.WithContext(ctx)
	if err := tx.Exec("CREATE EXTENSION IF NOT EXISTS postgis").Error; err != nil {
		return errors.Wrap(err, "failed to enable postgis")
	}

	models := model.All()
	if err := tx.AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}
	logger.InfoContext(ctx, "Schema migrated", slog.Int("tables", len(models)))

	return nil
}
