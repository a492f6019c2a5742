package repository

import (
	"context"

	"soko/internal/domain/entity"
)

// TagJobStore tracks background tagging jobs by id.
type TagJobStore interface {
	// SaveTagJob stores or overwrites a job.
	SaveTagJob(ctx context.Context, job *entity.TagJob) error

	// FindTagJob returns ErrJobNotFound for unknown or expired ids.
	FindTagJob(ctx context.Context, id string) (*entity.TagJob, error)
}
