package inference

import (
	"cmp"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"time"

	"soko/config"
	"soko/internal/domain/service"
	"soko/internal/infra/metrics"
)

const (
	taskZeroShot   = "zero-shot-classification"
	tagCachePrefix = "tags:"
)

type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
	MultiLabel      bool     `json:"multi_label"`
}

type labelScore struct {
	Label string
	Score float64
}

// zeroShotResponse accepts both the legacy {labels, scores} object and the
// newer [{label, score}] list.
type zeroShotResponse []labelScore

func (r *zeroShotResponse) UnmarshalJSON(data []byte) error {
	var legacy struct {
		Labels []string  `json:"labels"`
		Scores []float64 `json:"scores"`
	}
	if err := json.Unmarshal(data, &legacy); err == nil {
		out := make(zeroShotResponse, 0, len(legacy.Labels))
		for i, label := range legacy.Labels {
			if i < len(legacy.Scores) {
				out = append(out, labelScore{Label: label, Score: legacy.Scores[i]})
			}
		}
		*r = out

		return nil
	}

	var list []struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	out := make(zeroShotResponse, 0, len(list))
	for _, item := range list {
		out = append(out, labelScore{Label: item.Label, Score: item.Score})
	}
	*r = out

	return nil
}

// ZeroShotTagger labels text against a fixed candidate list.
type ZeroShotTagger struct {
	client    *Client
	cache     service.Cache
	model     string
	labels    []string
	threshold float64
	maxTags   int
	ttl       time.Duration
	logger    *slog.Logger
}

// NewZeroShotTagger creates the tagger used by tag jobs.
func NewZeroShotTagger(client *Client, cache service.Cache, cfg *config.Config, logger *slog.Logger) service.Tagger {
	e := cfg.Enrichment

	return &ZeroShotTagger{
		client:    client,
		cache:     cache,
		model:     e.ZeroShotModel,
		labels:    e.CandidateLabels,
		threshold: e.ScoreThreshold,
		maxTags:   e.MaxTags,
		ttl:       e.CacheTTL,
		logger:    logger,
	}
}

// Tag returns at most maxTags labels scoring strictly above the threshold,
// best first. Results are cached by text digest. Failures yield no tags.
func (t *ZeroShotTagger) Tag(ctx context.Context, text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	key := tagCacheKey(text)
	if cached, ok := t.cached(ctx, key); ok {
		return cached
	}

	var resp zeroShotResponse
	err := t.client.Call(ctx, taskZeroShot, t.model, zeroShotRequest{
		Inputs:     text,
		Parameters: zeroShotParameters{CandidateLabels: t.labels, MultiLabel: true},
	}, &resp)
	if err != nil {
		t.logger.ErrorContext(ctx, "AI tagging failed", slog.Any("error", err))

		return []string{}
	}

	tags := selectTags(resp, t.threshold, t.maxTags)

	if payload, err := json.Marshal(tags); err == nil {
		if err := t.cache.Set(ctx, key, payload, t.ttl); err != nil {
			t.logger.WarnContext(ctx, "Failed to cache tags", slog.Any("error", err))
		}
	}

	return tags
}

func (t *ZeroShotTagger) cached(ctx context.Context, key string) ([]string, bool) {
	payload, found, err := t.cache.Get(ctx, key)
	if err != nil {
		t.logger.WarnContext(ctx, "Tag cache lookup failed", slog.Any("error", err))

		return nil, false
	}
	if !found {
		metrics.CacheMisses.WithLabelValues("tags").Inc()

		return nil, false
	}

	var tags []string
	if err := json.Unmarshal(payload, &tags); err != nil {
		return nil, false
	}
	metrics.CacheHits.WithLabelValues("tags").Inc()

	return tags, true
}

func selectTags(scores []labelScore, threshold float64, limit int) []string {
	ranked := slices.Clone(scores)
	slices.SortStableFunc(ranked, func(a, b labelScore) int {
		return cmp.Compare(b.Score, a.Score)
	})

	tags := make([]string, 0, limit)
	for _, s := range ranked {
		if len(tags) == limit {
			break
		}
		if s.Score > threshold {
			tags = append(tags, s.Label)
		}
	}

	return tags
}

func tagCacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))

	return tagCachePrefix + hex.EncodeToString(sum[:])
}
