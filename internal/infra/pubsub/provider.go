// Package pubsub dispatches tag jobs to the enrichment worker.
package pubsub

import (
	"context"
	"log/slog"

	"soko/config"
	"soko/internal/domain/constants"
	"soko/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for TagJobPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Runner service.TagJobRunner
}

// NewTagJobPublisher creates a TagJobPublisher based on configuration.
// Without a provider jobs run inline.
func NewTagJobPublisher(params PublisherParams) (service.TagJobPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	var (
		publisher service.TagJobPublisher
		err       error
	)

	switch cfg.Provider {
	case "", constants.PubSubProviderInline:
		logger.Info("Running tag jobs inline")

		publisher = NewInlinePublisher(params.Runner, logger)

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.PubSubProviderNATS:
		if cfg.NATSURL == "" {
			return nil, errors.New("nats url is required for nats provider")
		}

		publisher, err = NewNATSPublisher(cfg.NATSURL, cfg.NATSSubject, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing TagJobPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
