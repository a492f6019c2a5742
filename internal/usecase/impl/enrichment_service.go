package impl

import (
	"context"
	"log/slog"
	"slices"

	"soko/config"
	"soko/internal/domain/entity"
	"soko/internal/domain/proximity"
	"soko/internal/domain/repository"
	"soko/internal/domain/service"
	"soko/internal/usecase"

	"github.com/pkg/errors"
)

type enrichmentService struct {
	describer       service.Describer
	scorer          service.SimilarityScorer
	serviceRepo     repository.ServiceRepository
	search          searcher
	suggestionLimit int
	logger          *slog.Logger
}

// NewEnrichmentService creates the synchronous text helpers.
func NewEnrichmentService(
	describer service.Describer,
	scorer service.SimilarityScorer,
	serviceRepo repository.ServiceRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.EnrichmentUsecase {
	limit := 5
	if cfg.Enrichment != nil && cfg.Enrichment.SuggestionLimit > 0 {
		limit = cfg.Enrichment.SuggestionLimit
	}

	return &enrichmentService{
		describer:       describer,
		scorer:          scorer,
		serviceRepo:     serviceRepo,
		search:          newSearcher(cfg),
		suggestionLimit: limit,
		logger:          logger,
	}
}

func (s *enrichmentService) EnhanceDescription(ctx context.Context, text string) string {
	return s.describer.Enhance(ctx, text)
}

// SuggestServices ranks every service title against text. Titles with no
// shared term still fill the list, in id order after the scored ones.
func (s *enrichmentService) SuggestServices(ctx context.Context, text string) ([]string, error) {
	titles, err := s.serviceRepo.ListServiceTitles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service titles")
	}
	if len(titles) == 0 {
		return []string{}, nil
	}

	order := rankByScore(s.scorer.Scores(text, titles), len(titles))
	suggestions := make([]string, 0, min(s.suggestionLimit, len(order)))
	for _, i := range order[:min(s.suggestionLimit, len(order))] {
		suggestions = append(suggestions, titles[i])
	}

	return suggestions, nil
}

// MatchServices scores the services of one proximity page. When scoring is
// unusable the page is returned in distance order with zero scores.
func (s *enrichmentService) MatchServices(ctx context.Context, text string, input *usecase.SearchInput) ([]usecase.ServiceMatch, error) {
	page, err := search(ctx, s.search, s.serviceRepo, input, proximity.KindService, proximity.PolicyUnfilteredWithoutOrigin, proximity.Scope{})
	if err != nil {
		return nil, err
	}

	matches := make([]usecase.ServiceMatch, 0, len(page.Items))
	docs := make([]string, 0, len(page.Items))
	for _, item := range page.Items {
		matches = append(matches, usecase.ServiceMatch{Service: item.Entity, DistanceMeters: item.DistanceMeters})
		docs = append(docs, serviceDocument(item.Entity))
	}
	if len(docs) == 0 {
		return matches, nil
	}

	scores := s.scorer.Scores(text, docs)
	if len(scores) != len(docs) {
		s.logger.Warn("Similarity scoring failed, keeping distance order", "services", len(docs), "scores", len(scores))

		return matches, nil
	}
	for i := range matches {
		matches[i].Score = scores[i]
	}
	slices.SortStableFunc(matches, func(a, b usecase.ServiceMatch) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	return matches, nil
}

func serviceDocument(svc *entity.Service) string {
	if svc.Description == "" {
		return svc.Title
	}

	return svc.Title + " " + svc.Description
}

// rankByScore returns document indexes by descending score; ties keep their
// original order. Missing scores count as zero.
func rankByScore(scores []float64, n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	score := func(i int) float64 {
		if i < len(scores) {
			return scores[i]
		}

		return 0
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case score(a) > score(b):
			return -1
		case score(a) < score(b):
			return 1
		default:
			return 0
		}
	})

	return order
}
