package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"soko/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), &buf
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLoggerTrace(t *testing.T) {
	t.Run("error is logged", func(t *testing.T) {
		l, buf := newTestGormLogger(&config.Config{})
		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		assert.Contains(t, buf.String(), "Query failed")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		l, buf := newTestGormLogger(&config.Config{})
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow query uses configured threshold", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Env.Log.SlowQuery = time.Millisecond
		l, buf := newTestGormLogger(cfg)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "Slow query")
	})

	t.Run("plain queries only in debug", func(t *testing.T) {
		l, buf := newTestGormLogger(&config.Config{})
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())

		cfg := &config.Config{}
		cfg.Env.Debug = true
		l, buf = newTestGormLogger(cfg)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), "SELECT 1")
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		l, buf := newTestGormLogger(&config.Config{})
		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}
