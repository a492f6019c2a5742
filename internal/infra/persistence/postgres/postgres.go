package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"soko/config"
	"soko/internal/domain/lifecycle"
	"soko/internal/errors"
	"soko/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval  = 5 * time.Second
	poolSlowWaitWarning = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary pool, plus any replicas go-lib registers through
// dbresolver, and binds the pool to the fx lifecycle. Listing reads opt in to
// replicas with dbresolver.Read.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-step writes go through txManager.Execute, so gorm's implicit
	// per-statement transaction is redundant.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := &poolMonitor{logger: params.Logger, db: sqlDB}
	sampleCtx, stopSampling := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			params.Logger.Info("PostgreSQL connected",
				slog.Int("replicas", len(params.Config.Postgres.Replicas)),
			)

			go monitor.run(sampleCtx, poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopSampling()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// VerifyPostGIS fails when the postgis extension is missing, which means the
// migrate command has not been run against this database.
func VerifyPostGIS(ctx context.Context, db *gorm.DB) error {
	var version string
	if err := db.WithContext(ctx).Raw("SELECT postgis_version()").Scan(&version).Error; err != nil {
		return errors.Wrap(err, "postgis is not available, run the migrate command first")
	}
	if version == "" {
		return errors.New("postgis_version returned nothing")
	}

	return nil
}

type poolMonitor struct {
	logger *slog.Logger
	db     *sql.DB
	last   sql.DBStats
}

func (m *poolMonitor) run(ctx context.Context, interval time.Duration) {
	if m.logger == nil || m.db == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.last = m.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sample(ctx)
		}
	}
}

func (m *poolMonitor) sample(ctx context.Context) {
	cur := m.db.Stats()
	waits := cur.WaitCount - m.last.WaitCount
	waited := cur.WaitDuration - m.last.WaitDuration
	m.last = cur

	metrics.UpdateDBPoolMetrics(cur, waits)
	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= poolSlowWaitWarning {
		level = slog.LevelWarn
	}
	m.logger.LogAttrs(ctx, level, "Connection pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
