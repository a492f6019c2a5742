package usecase

import (
	"context"

	"soko/internal/domain/entity"

	"github.com/google/uuid"
)

// ServiceMatch is a nearby service scored against a customer request.
type ServiceMatch struct {
	Service        *entity.Service
	DistanceMeters *float64
	Score          float64
}

// EnrichmentUsecase exposes the synchronous text helpers. None of them fail
// because an inference backend is down.
type EnrichmentUsecase interface {
	// EnhanceDescription returns the input when no rewrite is available.
	EnhanceDescription(ctx context.Context, text string) string

	// SuggestServices returns the titles of the services closest to text.
	SuggestServices(ctx context.Context, text string) ([]string, error)

	// MatchServices ranks services near the origin by similarity to text.
	MatchServices(ctx context.Context, text string, input *SearchInput) ([]ServiceMatch, error)
}

// TagJobUsecase accepts background tagging jobs and reports on them.
type TagJobUsecase interface {
	// SubmitTagJob returns the job id; the text must not exceed the
	// configured length.
	SubmitTagJob(ctx context.Context, text string, productID *uuid.UUID) (string, error)
	GetTagJob(ctx context.Context, id string) (*entity.TagJob, error)
}
