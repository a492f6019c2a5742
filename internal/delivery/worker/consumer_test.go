package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"soko/config"
	"soko/internal/delivery/worker/handler"
	"soko/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestConsumer_IdleWithoutNATSProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lc := fxtest.NewLifecycle(t)

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	consumer, err := NewConsumer(ConsumerParams{
		Lc:        lc,
		Cfg:       cfg,
		Logger:    logger,
		Processor: handler.NewJobProcessor(nil, logger),
	})
	require.NoError(t, err)

	lc.RequireStart()
	assert.NoError(t, consumer.Serve(context.Background()))
	lc.RequireStop()
}
