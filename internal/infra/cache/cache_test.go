package cache

import (
	"context"
	"testing"
	"time"

	"soko/config"
	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryCache(t *testing.T) *Badger {
	t.Helper()

	c, err := NewBadger("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c
}

func TestBadgerGetSet(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache(t)

	_, found, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	value, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v"), value)
}

func TestBadgerOverwrite(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache(t)

	require.NoError(t, c.Set(ctx, "k", []byte("first"), 0))
	require.NoError(t, c.Set(ctx, "k", []byte("second"), 0))

	value, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", string(value))
}

func TestTagJobStore(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	store := NewTagJobStore(newMemoryCache(t), cfg)

	t.Run("unknown job", func(t *testing.T) {
		_, err := store.FindTagJob(ctx, "nope")
		assert.ErrorIs(t, err, domainerrors.ErrJobNotFound)
	})

	t.Run("processing then completed", func(t *testing.T) {
		productID := uuid.New()
		job := &entity.TagJob{ID: "job-1", Text: "esp32 board", ProductID: &productID, Status: entity.TagJobProcessing}
		require.NoError(t, store.SaveTagJob(ctx, job))

		got, err := store.FindTagJob(ctx, "job-1")
		require.NoError(t, err)
		assert.Equal(t, entity.TagJobProcessing, got.Status)
		assert.Equal(t, productID, *got.ProductID)
		assert.Empty(t, got.Tags)

		job.Status = entity.TagJobCompleted
		job.Tags = []string{"esp32", "iot"}
		require.NoError(t, store.SaveTagJob(ctx, job))

		got, err = store.FindTagJob(ctx, "job-1")
		require.NoError(t, err)
		assert.Equal(t, entity.TagJobCompleted, got.Status)
		assert.Equal(t, []string{"esp32", "iot"}, got.Tags)
		assert.Equal(t, "esp32 board", got.Text)
	})
}
