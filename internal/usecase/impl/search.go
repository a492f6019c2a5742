package impl

import (
	"context"

	"soko/config"
	"soko/internal/domain/entity"
	"soko/internal/domain/proximity"
	"soko/internal/infra/metrics"
	"soko/internal/usecase"
)

// searcher turns list requests into proximity searches using the configured
// radii and paging bounds.
type searcher struct {
	radii proximity.Radii
	pages proximity.PagePolicy
}

func newSearcher(cfg *config.Config) searcher {
	s := searcher{radii: proximity.DefaultRadii(), pages: proximity.DefaultPagePolicy}
	p := cfg.Proximity
	if p == nil {
		return s
	}

	for kind, km := range map[proximity.Kind]float64{
		proximity.KindBusiness:       p.BusinessRadiusKm,
		proximity.KindProduct:        p.ProductRadiusKm,
		proximity.KindService:        p.ServiceRadiusKm,
		proximity.KindNearbyBusiness: p.NearbyBusinessRadiusKm,
		proximity.KindAvailability:   p.AvailabilityRadiusKm,
	} {
		if km > 0 {
			s.radii[kind] = km
		}
	}
	if p.DefaultPageSize > 0 {
		s.pages.DefaultSize = p.DefaultPageSize
	}
	if p.MaxPageSize > 0 {
		s.pages.MaxSize = p.MaxPageSize
	}

	return s
}

// parse validates the raw query and page values of input.
func (s searcher) parse(input *usecase.SearchInput, kind proximity.Kind, policy proximity.Policy) (proximity.Query, proximity.PageRequest, error) {
	q, err := proximity.ParseQuery(input.Params, kind, policy, s.radii)
	if err != nil {
		return proximity.Query{}, proximity.PageRequest{}, err
	}
	page, err := s.pages.ParsePage(input.Page, input.PageSize)
	if err != nil {
		return proximity.Query{}, proximity.PageRequest{}, err
	}

	return q, page, nil
}

func searchMode(q proximity.Query) string {
	switch {
	case q.HasOrigin():
		return metrics.SearchModeRadius
	case q.Policy == proximity.PolicyEmptyWithoutOrigin:
		return metrics.SearchModeEmpty
	default:
		return metrics.SearchModeUnfiltered
	}
}

// search parses input, runs the engine against store and records the outcome.
func search[T any](ctx context.Context, s searcher, store proximity.ListingStore[T], input *usecase.SearchInput, kind proximity.Kind, policy proximity.Policy, scope proximity.Scope) (*proximity.Page[T], error) {
	if input == nil {
		input = &usecase.SearchInput{}
	}
	q, page, err := s.parse(input, kind, policy)
	if err != nil {
		return nil, err
	}

	result, err := proximity.Search(ctx, store, q, scope, page)
	if err != nil {
		return nil, err
	}
	metrics.ObserveSearch(string(kind), searchMode(q), result.Total)

	return result, nil
}

// locationOrUnset returns the supplied location or the (0,0) placeholder.
func locationOrUnset(p *entity.GeoPoint) (entity.GeoPoint, error) {
	if p == nil {
		return entity.UnsetPoint, nil
	}
	if err := p.Validate(); err != nil {
		return entity.GeoPoint{}, err
	}

	return *p, nil
}
