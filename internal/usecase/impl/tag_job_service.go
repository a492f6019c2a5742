package impl

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"soko/config"
	deliverycontext "soko/internal/delivery/context"
	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/domain/repository"
	"soko/internal/domain/service"
	"soko/internal/infra/metrics"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type tagJobService struct {
	store     repository.TagJobStore
	publisher service.TagJobPublisher
	maxLength int
	logger    *slog.Logger
}

// NewTagJobService creates the use cases that accept and report tag jobs.
func NewTagJobService(
	store repository.TagJobStore,
	publisher service.TagJobPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TagJobUsecase {
	maxLength := 0
	if cfg.Enrichment != nil {
		maxLength = cfg.Enrichment.MaxTextLength
	}

	return &tagJobService{
		store:     store,
		publisher: publisher,
		maxLength: maxLength,
		logger:    logger,
	}
}

// SubmitTagJob records the job as processing before publishing it, so a
// status lookup never misses a job a worker already picked up.
func (s *tagJobService) SubmitTagJob(ctx context.Context, text string, productID *uuid.UUID) (string, error) {
	if s.maxLength > 0 && utf8.RuneCountInString(text) > s.maxLength {
		return "", domainerrors.ErrTextTooLong
	}

	job := &entity.TagJob{
		ID:        newID().String(),
		Text:      text,
		ProductID: productID,
		Status:    entity.TagJobProcessing,
		Tags:      []string{},
	}
	if err := s.store.SaveTagJob(ctx, job); err != nil {
		return "", errors.Wrap(err, "failed to save tag job")
	}

	event := &service.TagJobEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		JobID:     job.ID,
		Text:      text,
	}
	if productID != nil {
		event.ProductID = productID.String()
	}
	if err := s.publisher.PublishTagJob(ctx, event); err != nil {
		s.logger.Error("Failed to publish tag job", "jobID", job.ID, "error", err)

		return "", errors.Wrap(err, "failed to publish tag job")
	}
	metrics.ObserveTagJob(metrics.TagJobSubmitted)

	return job.ID, nil
}

func (s *tagJobService) GetTagJob(ctx context.Context, id string) (*entity.TagJob, error) {
	job, err := s.store.FindTagJob(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find tag job")
	}

	return job, nil
}

// tagJobRunner executes tag jobs for the inline publisher and the worker.
type tagJobRunner struct {
	tagger      service.Tagger
	store       repository.TagJobStore
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewTagJobRunner creates the runner shared by every dispatch mode.
func NewTagJobRunner(
	tagger service.Tagger,
	store repository.TagJobStore,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) service.TagJobRunner {
	return &tagJobRunner{
		tagger:      tagger,
		store:       store,
		productRepo: productRepo,
		logger:      logger,
	}
}

// RunTagJob tags the text, writes the product tags and then marks the job
// completed. Storage failures are retryable; malformed events are not.
func (r *tagJobRunner) RunTagJob(ctx context.Context, event *service.TagJobEvent) error {
	logger := r.logger.With("jobID", event.JobID, "requestID", event.RequestID)

	if event.JobID == "" {
		metrics.ObserveTagJob(metrics.TagJobDropped)

		return errors.New("tag job event without job id")
	}
	var productID *uuid.UUID
	if event.ProductID != "" {
		id, err := uuid.Parse(event.ProductID)
		if err != nil {
			metrics.ObserveTagJob(metrics.TagJobDropped)

			return errors.Wrapf(err, "tag job %s has an invalid product id", event.JobID)
		}
		productID = &id
	}

	tags := r.tagger.Tag(ctx, event.Text)

	if productID != nil {
		err := r.productRepo.UpdateProductTags(ctx, *productID, tags)
		switch {
		case errors.Is(err, domainerrors.ErrProductNotFound):
			logger.Warn("Product deleted before tagging finished", "productID", productID)
		case err != nil:
			metrics.ObserveTagJob(metrics.TagJobFailed)

			return service.NewRetryableError(errors.Wrap(err, "failed to write product tags"))
		}
	}

	job := &entity.TagJob{
		ID:        event.JobID,
		Text:      event.Text,
		ProductID: productID,
		Status:    entity.TagJobCompleted,
		Tags:      tags,
	}
	if err := r.store.SaveTagJob(ctx, job); err != nil {
		metrics.ObserveTagJob(metrics.TagJobFailed)

		return service.NewRetryableError(errors.Wrap(err, "failed to save tag job result"))
	}
	metrics.ObserveTagJob(metrics.TagJobCompleted)
	logger.Debug("Tag job completed", "tags", len(tags))

	return nil
}
