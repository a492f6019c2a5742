package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"soko/internal/domain/service"
)

const inlineJobTimeout = time.Minute

// inlinePublisher runs tag jobs in a goroutine of the API process. It is the
// default when no broker is configured.
type inlinePublisher struct {
	runner service.TagJobRunner
	logger *slog.Logger
	wg     sync.WaitGroup
}

// NewInlinePublisher creates a publisher that executes jobs itself.
func NewInlinePublisher(runner service.TagJobRunner, logger *slog.Logger) service.TagJobPublisher {
	return &inlinePublisher{runner: runner, logger: logger}
}

// PublishTagJob starts the job and returns immediately. The job outlives the
// request context.
func (p *inlinePublisher) PublishTagJob(ctx context.Context, event *service.TagJobEvent) error {
	jobCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), inlineJobTimeout)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer cancel()

		if err := p.runner.RunTagJob(jobCtx, event); err != nil {
			p.logger.ErrorContext(jobCtx, "[InlinePubSub] Tag job failed",
				slog.String("job_id", event.JobID),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// Close waits for running jobs.
func (p *inlinePublisher) Close() error {
	p.wg.Wait()

	return nil
}
