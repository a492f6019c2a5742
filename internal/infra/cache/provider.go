// Package cache provides the byte caches behind enrichment results and tag
// job status, plus the job store built on top of them.
package cache

import (
	"context"
	"log/slog"

	"soko/config"
	"soko/internal/domain/constants"
	"soko/internal/domain/service"
	"soko/internal/errors"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type closableCache interface {
	service.Cache
	Close() error
}

// New selects the cache driver from configuration and closes it on shutdown.
// An empty driver means the in-memory badger store.
func New(params Params) (service.Cache, error) {
	var (
		c   closableCache
		err error
	)

	driver := params.Config.Cache.Driver
	switch driver {
	case constants.CacheDriverValkey:
		if params.Config.Cache.Address == "" {
			return nil, errors.New("cache.address is required for the valkey driver")
		}
		c, err = NewValkey(params.Config.Cache.Address)
	case constants.CacheDriverMemory, "":
		driver = constants.CacheDriverMemory
		c, err = NewBadger("")
	default:
		return nil, errors.Errorf("unknown cache driver: %s", driver)
	}
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Cache initialized", slog.String("driver", driver))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})

	return c, nil
}
