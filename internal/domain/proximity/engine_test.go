package proximity_test

import (
	"context"
	"math"
	"testing"

	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/domain/proximity"
	"soko/internal/errors"
	"soko/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nairobi = entity.GeoPoint{Lon: 36.8219, Lat: -1.2921}

type place struct {
	name string
	at   entity.GeoPoint
}

// Roughly: Upper Hill ~1km, Westlands ~3.4km, JKIA ~12km, Karen ~13km, Thika ~40km.
var places = []place{
	{name: "thika", at: entity.GeoPoint{Lon: 37.0693, Lat: -1.0333}},
	{name: "westlands", at: entity.GeoPoint{Lon: 36.8030, Lat: -1.2676}},
	{name: "cbd", at: nairobi},
	{name: "jkia", at: entity.GeoPoint{Lon: 36.9275, Lat: -1.3192}},
	{name: "upper-hill", at: entity.GeoPoint{Lon: 36.8172, Lat: -1.3000}},
	{name: "karen", at: entity.GeoPoint{Lon: 36.7073, Lat: -1.3197}},
}

func newBusiness(t *testing.T, name string, at entity.GeoPoint, owner uuid.UUID) *entity.Business {
	t.Helper()

	return &entity.Business{ID: uuid.Must(uuid.NewV7()), OwnerID: owner, Name: name, Location: at}
}

func seededStore(t *testing.T, owner uuid.UUID) *memory.ListingStore[*entity.Business] {
	t.Helper()

	store := memory.NewListingStore[*entity.Business](memory.MatchBusiness)
	for _, p := range places {
		store.Add(newBusiness(t, p.name, p.at, owner))
	}

	return store
}

func nearQuery(t *testing.T, radius string, policy proximity.Policy) proximity.Query {
	t.Helper()

	q, err := proximity.ParseQuery(proximity.RawParams{Lat: "-1.2921", Lng: "36.8219", Radius: radius},
		proximity.KindBusiness, policy, proximity.DefaultRadii())
	require.NoError(t, err)

	return q
}

func names(page *proximity.Page[*entity.Business]) []string {
	out := make([]string, 0, len(page.Items))
	for _, item := range page.Items {
		out = append(out, item.Entity.Name)
	}

	return out
}

func firstPage() proximity.PageRequest {
	return proximity.PageRequest{Page: 1, PageSize: proximity.DefaultPageSize}
}

func TestSearch_RadiusFilterAndOrdering(t *testing.T) {
	store := seededStore(t, uuid.New())
	q := nearQuery(t, "10", proximity.PolicyUnfilteredWithoutOrigin)

	page, err := proximity.Search(context.Background(), store, q, proximity.Scope{}, firstPage())
	require.NoError(t, err)

	assert.Equal(t, []string{"cbd", "upper-hill", "westlands"}, names(page))
	assert.EqualValues(t, 3, page.Total)

	require.NotNil(t, page.Items[0].DistanceMeters)
	assert.InDelta(t, 0, *page.Items[0].DistanceMeters, 0.001)

	for i, item := range page.Items {
		require.NotNil(t, item.DistanceMeters)
		assert.LessOrEqual(t, *item.DistanceMeters, q.RadiusMeters())
		if i > 0 {
			assert.LessOrEqual(t, *page.Items[i-1].DistanceMeters, *item.DistanceMeters)
		}
	}
}

func TestSearch_WiderRadiusAdmitsMore(t *testing.T) {
	store := seededStore(t, uuid.New())

	page, err := proximity.Search(context.Background(), store, nearQuery(t, "15", proximity.PolicyUnfilteredWithoutOrigin), proximity.Scope{}, firstPage())
	require.NoError(t, err)

	assert.Equal(t, []string{"cbd", "upper-hill", "westlands", "jkia", "karen"}, names(page))
}

func TestSearch_TiesBreakByInsertionOrder(t *testing.T) {
	store := memory.NewListingStore[*entity.Business](memory.MatchBusiness)
	owner := uuid.New()
	for _, name := range []string{"a", "b", "c"} {
		store.Add(newBusiness(t, name, nairobi, owner))
	}

	for range 3 {
		page, err := proximity.Search(context.Background(), store, nearQuery(t, "1", proximity.PolicyUnfilteredWithoutOrigin), proximity.Scope{}, firstPage())
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, names(page))
	}
}

func TestSearch_NoOriginPolicies(t *testing.T) {
	t.Run("nearby endpoint returns nothing and never queries the store", func(t *testing.T) {
		q, err := proximity.ParseQuery(proximity.RawParams{}, proximity.KindNearbyBusiness, proximity.PolicyEmptyWithoutOrigin, proximity.DefaultRadii())
		require.NoError(t, err)

		page, err := proximity.Search[*entity.Business](context.Background(), failingStore{}, q, proximity.Scope{}, firstPage())
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Zero(t, page.Total)
	})

	t.Run("list endpoint returns the full collection in insertion order", func(t *testing.T) {
		store := seededStore(t, uuid.New())
		q, err := proximity.ParseQuery(proximity.RawParams{}, proximity.KindBusiness, proximity.PolicyUnfilteredWithoutOrigin, proximity.DefaultRadii())
		require.NoError(t, err)

		page, err := proximity.Search(context.Background(), store, q, proximity.Scope{}, firstPage())
		require.NoError(t, err)

		assert.Equal(t, []string{"thika", "westlands", "cbd", "jkia", "upper-hill", "karen"}, names(page))
		for _, item := range page.Items {
			assert.Nil(t, item.DistanceMeters)
		}
	})
}

func TestSearch_ScopeIsAConjunctionWithRadius(t *testing.T) {
	mine, theirs := uuid.New(), uuid.New()
	store := memory.NewListingStore[*entity.Business](memory.MatchBusiness)
	store.Add(
		newBusiness(t, "mine-near", nairobi, mine),
		newBusiness(t, "theirs-near", nairobi, theirs),
		newBusiness(t, "mine-far", places[0].at, mine),
		newBusiness(t, "theirs-far", places[0].at, theirs),
	)

	page, err := proximity.Search(context.Background(), store, nearQuery(t, "5", proximity.PolicyUnfilteredWithoutOrigin), proximity.Scope{OwnerID: &mine}, firstPage())
	require.NoError(t, err)

	assert.Equal(t, []string{"mine-near"}, names(page))
}

func TestSearch_Pagination(t *testing.T) {
	store := memory.NewListingStore[*entity.Business](memory.MatchBusiness)
	owner := uuid.New()
	for i := range 45 {
		at := entity.GeoPoint{Lon: nairobi.Lon + float64(i)*0.0001, Lat: nairobi.Lat}
		store.Add(newBusiness(t, string(rune('A'+i)), at, owner))
	}
	q := nearQuery(t, "50", proximity.PolicyUnfilteredWithoutOrigin)

	pageReq, err := proximity.DefaultPagePolicy.ParsePage("3", "")
	require.NoError(t, err)
	page, err := proximity.Search(context.Background(), store, q, proximity.Scope{}, pageReq)
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.EqualValues(t, 45, page.Total)
	assert.Equal(t, 3, page.TotalPages())
	assert.False(t, page.HasNext())

	capped, err := proximity.DefaultPagePolicy.ParsePage("", "1000")
	require.NoError(t, err)
	page, err = proximity.Search(context.Background(), store, q, proximity.Scope{}, capped)
	require.NoError(t, err)
	assert.Len(t, page.Items, 45)
	assert.Equal(t, 100, page.PageSize)

	_, err = proximity.Search(context.Background(), store, q, proximity.Scope{}, proximity.PageRequest{Page: 4, PageSize: 20})
	assert.ErrorIs(t, err, domainerrors.ErrPageNotFound)

	for _, huge := range []proximity.PageRequest{
		{Page: math.MaxInt/4 + 2, PageSize: 4},
		{Page: math.MaxInt, PageSize: 20},
	} {
		_, err = proximity.Search(context.Background(), store, q, proximity.Scope{}, huge)
		assert.ErrorIs(t, err, domainerrors.ErrPageNotFound)
	}
}

func TestSearch_StoreFailureIsReturned(t *testing.T) {
	_, err := proximity.Search[*entity.Business](context.Background(), failingStore{}, nearQuery(t, "", proximity.PolicyUnfilteredWithoutOrigin), proximity.Scope{}, firstPage())
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
}

var errStoreDown = errors.New("geospatial index unavailable")

type failingStore struct{}

func (failingStore) FindWithinRadius(context.Context, entity.GeoPoint, float64, proximity.Scope, proximity.PageRequest) ([]proximity.Ranked[*entity.Business], int64, error) {
	return nil, 0, errStoreDown
}

func (failingStore) FindAll(context.Context, proximity.Scope, proximity.PageRequest) ([]*entity.Business, int64, error) {
	return nil, 0, errStoreDown
}
