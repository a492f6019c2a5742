package proximity

import (
	"context"

	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/errors"

	"github.com/google/uuid"
)

// Ranked pairs a listing with its distance to the query origin in meters.
// DistanceMeters is nil for queries without an origin.
type Ranked[T any] struct {
	Entity         T
	DistanceMeters *float64
}

// Scope is an extra predicate applied in conjunction with the radius
// filter. Nil fields do not constrain. How each field maps onto a
// collection is documented by the store implementing it.
type Scope struct {
	OwnerID    *uuid.UUID
	ParentID   *uuid.UUID
	CategoryID *uuid.UUID
}

// ListingStore is the capability set the engine needs from a collection.
//
// FindWithinRadius must evaluate the radius filter and the scope as a single
// conjunction, order by ascending distance then ascending id, and apply the
// page after ordering. FindAll returns the scoped collection in id order.
// Both return the total number of matches before paging.
type ListingStore[T any] interface {
	FindWithinRadius(ctx context.Context, origin entity.GeoPoint, radiusMeters float64, scope Scope, page PageRequest) ([]Ranked[T], int64, error)
	FindAll(ctx context.Context, scope Scope, page PageRequest) ([]T, int64, error)
}

// Search runs q against store and returns the requested page.
//
// A page past the last one is reported as PAGE_NOT_FOUND. Store failures are
// returned as is; the engine never retries.
func Search[T any](ctx context.Context, store ListingStore[T], q Query, scope Scope, page PageRequest) (*Page[T], error) {
	result := &Page[T]{Items: []Ranked[T]{}, Page: page.Page, PageSize: page.PageSize}

	switch {
	case !q.HasOrigin() && q.Policy == PolicyEmptyWithoutOrigin:
		// nothing to rank against
	case !q.HasOrigin():
		items, total, err := store.FindAll(ctx, scope, page)
		if err != nil {
			return nil, errors.Wrapf(err, "list %s", q.Kind)
		}
		result.Total = total
		for _, item := range items {
			result.Items = append(result.Items, Ranked[T]{Entity: item})
		}
	default:
		items, total, err := store.FindWithinRadius(ctx, *q.Origin, q.RadiusMeters(), scope, page)
		if err != nil {
			return nil, errors.Wrapf(err, "search %s within %.3fkm", q.Kind, q.RadiusKm)
		}
		result.Total = total
		result.Items = append(result.Items, items...)
	}

	if page.Page > 1 && int64(page.Offset()) >= result.Total {
		return nil, domainerrors.ErrPageNotFound
	}

	return result, nil
}
