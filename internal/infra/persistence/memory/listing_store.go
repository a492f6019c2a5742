// Package memory provides in-process listing stores with the same ordering
// and scoping rules as the PostGIS repositories. Distances are great-circle
// (haversine) distances on a spherical earth.
package memory

import (
	"bytes"
	"context"
	"slices"
	"sync"

	"soko/internal/domain/entity"
	"soko/internal/domain/proximity"

	"github.com/paulmach/orb/geo"
)

// ScopeMatcher decides whether an item satisfies a scope predicate.
type ScopeMatcher[T entity.Geotagged] func(item T, scope proximity.Scope) bool

// ListingStore keeps items in insertion order.
type ListingStore[T entity.Geotagged] struct {
	mu    sync.RWMutex
	items []T
	match ScopeMatcher[T]
}

// NewListingStore creates an empty store scoped by match.
func NewListingStore[T entity.Geotagged](match ScopeMatcher[T]) *ListingStore[T] {
	return &ListingStore[T]{match: match}
}

// Add appends items.
func (s *ListingStore[T]) Add(items ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, items...)
}

// FindWithinRadius implements proximity.ListingStore.
func (s *ListingStore[T]) FindWithinRadius(_ context.Context, origin entity.GeoPoint, radiusMeters float64, scope proximity.Scope, page proximity.PageRequest) ([]proximity.Ranked[T], int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]proximity.Ranked[T], 0)
	for _, item := range s.items {
		if !s.match(item, scope) {
			continue
		}
		d := geo.Distance(origin.Point(), item.GetLocation().Point())
		if d > radiusMeters {
			continue
		}
		matched = append(matched, proximity.Ranked[T]{Entity: item, DistanceMeters: &d})
	}

	slices.SortStableFunc(matched, func(a, b proximity.Ranked[T]) int {
		switch {
		case *a.DistanceMeters < *b.DistanceMeters:
			return -1
		case *a.DistanceMeters > *b.DistanceMeters:
			return 1
		}
		ida, idb := a.Entity.GetID(), b.Entity.GetID()

		return bytes.Compare(ida[:], idb[:])
	})

	return paginate(matched, page), int64(len(matched)), nil
}

// FindAll implements proximity.ListingStore.
func (s *ListingStore[T]) FindAll(_ context.Context, scope proximity.Scope, page proximity.PageRequest) ([]T, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if s.match(item, scope) {
			matched = append(matched, item)
		}
	}

	return paginate(matched, page), int64(len(matched)), nil
}

func paginate[E any](items []E, page proximity.PageRequest) []E {
	start := page.Offset()
	if start >= len(items) || start < 0 {
		return []E{}
	}
	end := min(start+page.PageSize, len(items))

	return items[start:end]
}
