package service

import (
	"context"
	"time"
)

// Tagger labels free text. Implementations fail open: on any error they
// return an empty slice and log.
type Tagger interface {
	Tag(ctx context.Context, text string) []string
}

// Describer rewrites a listing description. On any error it returns the
// input unchanged.
type Describer interface {
	Enhance(ctx context.Context, text string) string
}

// Cache is a byte cache with per-entry expiry.
type Cache interface {
	// Get reports found=false for a miss.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// SimilarityScorer scores documents against a query; higher is closer.
type SimilarityScorer interface {
	// Scores returns one score in [0, 1] per document, in document order.
	Scores(query string, docs []string) []float64
}
