package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"soko/internal/domain/service"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

// TagJobStream holds tag jobs until a worker acknowledges them.
const TagJobStream = "SOKO_TAG_JOBS"

// ConnectJetStream connects to url and makes sure the tag job stream
// captures subject.
func ConnectJetStream(url, subject string) (*nats.Conn, nats.JetStreamContext, error) {
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, nil, errors.Wrap(err, "nats connect")
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()

		return nil, nil, errors.Wrap(err, "jetstream")
	}

	cfg := nats.StreamConfig{
		Name:      TagJobStream,
		Subjects:  []string{subject},
		Retention: nats.WorkQueuePolicy,
		MaxAge:    24 * time.Hour,
		Storage:   nats.FileStorage,
	}
	if _, err := js.AddStream(&cfg); err != nil {
		// Stream may already exist, try update
		if _, err := js.UpdateStream(&cfg); err != nil {
			conn.Close()

			return nil, nil, errors.Wrapf(err, "ensure stream %s", cfg.Name)
		}
	}

	return conn, js, nil
}

type natsPublisher struct {
	conn    *nats.Conn
	js      nats.JetStreamContext
	subject string
	logger  *slog.Logger
}

// NewNATSPublisher publishes tag jobs to a JetStream work queue.
func NewNATSPublisher(url, subject string, logger *slog.Logger) (service.TagJobPublisher, error) {
	conn, js, err := ConnectJetStream(url, subject)
	if err != nil {
		return nil, err
	}

	logger.Info("NATS JetStream publisher initialized",
		slog.String("url", url),
		slog.String("subject", subject),
	)

	return &natsPublisher{conn: conn, js: js, subject: subject, logger: logger}, nil
}

func (p *natsPublisher) PublishTagJob(ctx context.Context, event *service.TagJobEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := nats.NewMsg(p.subject)
	msg.Data = data
	msg.Header.Set(nats.MsgIdHdr, event.JobID)
	if event.RequestID != "" {
		msg.Header.Set("X-Request-Id", event.RequestID)
	}

	if _, err := p.js.PublishMsg(msg, nats.Context(ctx)); err != nil {
		return errors.Wrapf(err, "publish tag job %s", event.JobID)
	}

	return nil
}

// Close drains and closes the connection.
func (p *natsPublisher) Close() error {
	return errors.WithStack(p.conn.Drain())
}
