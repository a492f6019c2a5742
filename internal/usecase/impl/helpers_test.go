package impl

import (
	"io"
	"log/slog"

	"soko/config"
	"soko/internal/domain/entity"
	"soko/internal/usecase"

	"github.com/google/uuid"
)

var nairobi = entity.GeoPoint{Lon: 36.8219, Lat: -1.2921}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

func actorWith(roles ...entity.Role) usecase.Actor {
	return usecase.Actor{UserID: uuid.Must(uuid.NewV7()), Roles: roles}
}

func ptr[T any](v T) *T {
	return &v
}
