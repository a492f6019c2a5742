package cache

import (
	"context"
	"encoding/json"
	"time"

	"soko/config"
	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/domain/repository"
	"soko/internal/domain/service"
	"soko/internal/errors"

	"github.com/google/uuid"
)

const tagJobKeyPrefix = "tagjob:"

type tagJobRecord struct {
	Text      string              `json:"text"`
	ProductID *uuid.UUID          `json:"product_id,omitempty"`
	Status    entity.TagJobStatus `json:"status"`
	Tags      []string            `json:"tags,omitempty"`
}

type tagJobStore struct {
	cache service.Cache
	ttl   time.Duration
}

// NewTagJobStore keeps job status in cache for cfg.Cache.JobTTL.
func NewTagJobStore(c service.Cache, cfg *config.Config) repository.TagJobStore {
	return &tagJobStore{cache: c, ttl: cfg.Cache.JobTTL}
}

func (s *tagJobStore) SaveTagJob(ctx context.Context, job *entity.TagJob) error {
	payload, err := json.Marshal(tagJobRecord{
		Text:      job.Text,
		ProductID: job.ProductID,
		Status:    job.Status,
		Tags:      job.Tags,
	})
	if err != nil {
		return errors.Wrap(err, "encode tag job")
	}

	return s.cache.Set(ctx, tagJobKeyPrefix+job.ID, payload, s.ttl)
}

func (s *tagJobStore) FindTagJob(ctx context.Context, id string) (*entity.TagJob, error) {
	payload, found, err := s.cache.Get(ctx, tagJobKeyPrefix+id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainerrors.ErrJobNotFound
	}

	var rec tagJobRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, errors.Wrapf(err, "decode tag job %s", id)
	}

	return &entity.TagJob{
		ID:        id,
		Text:      rec.Text,
		ProductID: rec.ProductID,
		Status:    rec.Status,
		Tags:      rec.Tags,
	}, nil
}
