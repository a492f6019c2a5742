package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"soko/config"
	"soko/internal/delivery"
	"soko/internal/delivery/worker/handler"
	"soko/internal/domain/constants"
	"soko/internal/errors"
	"soko/internal/infra/pubsub"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
)

const (
	consumerQueue   = "enrichworker"
	consumerAckWait = 2 * time.Minute
	redeliveryDelay = 5 * time.Second
	maxDeliveries   = 5
)

// natsConsumer pulls tag jobs from the JetStream work queue. Workers share a
// durable queue group, so each job is handled once.
type natsConsumer struct {
	cfg       *config.PubSubConfig
	processor *handler.JobProcessor
	logger    *slog.Logger

	conn *nats.Conn
	sub  *nats.Subscription
	done chan struct{}
	once sync.Once
}

// ConsumerParams holds dependencies for the queue consumer
type ConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.JobProcessor
}

// NewConsumer creates the JetStream consumer delivery.
func NewConsumer(params ConsumerParams) (delivery.Delivery, error) {
	c := &natsConsumer{
		cfg:       params.Cfg.PubSub,
		processor: params.Processor,
		logger:    params.Logger,
		done:      make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

// Serve subscribes and blocks until the consumer is stopped. Without the nats
// provider jobs arrive on the push endpoint and Serve returns at once.
func (c *natsConsumer) Serve(ctx context.Context) error {
	if c.cfg == nil || c.cfg.Provider != constants.PubSubProviderNATS {
		return nil
	}

	conn, js, err := pubsub.ConnectJetStream(c.cfg.NATSURL, c.cfg.NATSSubject)
	if err != nil {
		return err
	}
	c.conn = conn

	sub, err := js.QueueSubscribe(c.cfg.NATSSubject, consumerQueue, c.handle,
		nats.Durable(consumerQueue),
		nats.ManualAck(),
		nats.AckWait(consumerAckWait),
		nats.MaxDeliver(maxDeliveries),
		nats.DeliverAll(),
	)
	if err != nil {
		conn.Close()

		return errors.Wrapf(err, "subscribe %s", c.cfg.NATSSubject)
	}
	c.sub = sub

	c.logger.Info("Consuming tag jobs from NATS JetStream",
		slog.String("subject", c.cfg.NATSSubject),
		slog.String("queue", consumerQueue),
	)

	select {
	case <-ctx.Done():
	case <-c.done:
	}

	return nil
}

func (c *natsConsumer) handle(msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), consumerAckWait)
	defer cancel()

	var settleErr error
	switch c.processor.Process(ctx, msg.Data, msg.Header.Get("X-Request-Id")) {
	case handler.OutcomeRetry:
		settleErr = msg.NakWithDelay(redeliveryDelay)
	default:
		settleErr = msg.Ack()
	}

	if settleErr != nil {
		c.logger.Warn("[Worker] Failed to settle NATS message", slog.Any("error", settleErr))
	}
}

func (c *natsConsumer) stop(_ context.Context) error {
	var err error
	c.once.Do(func() {
		close(c.done)
		if c.sub != nil {
			err = c.sub.Drain()
		}
		if c.conn != nil {
			if drainErr := c.conn.Drain(); drainErr != nil && err == nil {
				err = drainErr
			}
		}
	})

	c.logger.Info("Stopped NATS consumer")

	return errors.WithStack(err)
}
