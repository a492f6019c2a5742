package proximity

import (
	"math"
	"testing"

	domainerrors "soko/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        RawParams
		kind       Kind
		wantErr    error
		wantOrigin bool
		wantLon    float64
		wantLat    float64
		wantRadius float64
	}{
		{name: "no origin uses business default", raw: RawParams{}, kind: KindBusiness, wantRadius: 10},
		{name: "no origin uses service default", raw: RawParams{}, kind: KindService, wantRadius: 20},
		{name: "nearby default is five km", raw: RawParams{}, kind: KindNearbyBusiness, wantRadius: 5},
		{
			name:       "lat lng are read latitude first",
			raw:        RawParams{Lat: "-1.2921", Lng: "36.8219"},
			kind:       KindProduct,
			wantOrigin: true,
			wantLon:    36.8219,
			wantLat:    -1.2921,
			wantRadius: 10,
		},
		{
			name:       "explicit radius",
			raw:        RawParams{Lat: " -1.2921 ", Lng: "36.8219", Radius: "2.5"},
			kind:       KindService,
			wantOrigin: true,
			wantLon:    36.8219,
			wantLat:    -1.2921,
			wantRadius: 2.5,
		},
		{name: "only lat", raw: RawParams{Lat: "-1.2921"}, kind: KindBusiness, wantErr: domainerrors.ErrInvalidCoordinates},
		{name: "only lng", raw: RawParams{Lng: "36.8"}, kind: KindBusiness, wantErr: domainerrors.ErrInvalidCoordinates},
		{name: "non numeric lat", raw: RawParams{Lat: "abc", Lng: "36.8"}, kind: KindBusiness, wantErr: domainerrors.ErrInvalidCoordinates},
		{name: "non numeric lng", raw: RawParams{Lat: "-1.2", Lng: "east"}, kind: KindBusiness, wantErr: domainerrors.ErrInvalidCoordinates},
		{name: "nan lat", raw: RawParams{Lat: "NaN", Lng: "36.8"}, kind: KindBusiness, wantErr: domainerrors.ErrInvalidCoordinates},
		{name: "infinite lng", raw: RawParams{Lat: "1", Lng: "+Inf"}, kind: KindBusiness, wantErr: domainerrors.ErrInvalidCoordinates},
		{name: "lat out of range", raw: RawParams{Lat: "91", Lng: "36.8"}, kind: KindBusiness, wantErr: domainerrors.ErrInvalidCoordinates},
		{name: "lng out of range", raw: RawParams{Lat: "1", Lng: "-180.5"}, kind: KindBusiness, wantErr: domainerrors.ErrInvalidCoordinates},
		{name: "zero radius", raw: RawParams{Lat: "1", Lng: "1", Radius: "0"}, kind: KindBusiness, wantErr: domainerrors.ErrInvalidRadius},
		{name: "negative radius", raw: RawParams{Lat: "1", Lng: "1", Radius: "-3"}, kind: KindBusiness, wantErr: domainerrors.ErrInvalidRadius},
		{name: "non numeric radius", raw: RawParams{Radius: "far"}, kind: KindBusiness, wantErr: domainerrors.ErrInvalidRadius},
		{name: "infinite radius", raw: RawParams{Radius: "Inf"}, kind: KindBusiness, wantErr: domainerrors.ErrInvalidRadius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q, err := ParseQuery(tt.raw, tt.kind, PolicyUnfilteredWithoutOrigin, DefaultRadii())
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRadius, q.RadiusKm)
			assert.Equal(t, tt.wantRadius*1000, q.RadiusMeters())
			assert.Equal(t, tt.kind, q.Kind)
			require.Equal(t, tt.wantOrigin, q.HasOrigin())
			if tt.wantOrigin {
				assert.InDelta(t, tt.wantLon, q.Origin.Lon, 1e-9)
				assert.InDelta(t, tt.wantLat, q.Origin.Lat, 1e-9)
			}
		})
	}
}

func TestRadii_ForFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	radii := Radii{KindBusiness: 3, KindProduct: 0}

	assert.Equal(t, 3.0, radii.For(KindBusiness))
	assert.Equal(t, 10.0, radii.For(KindProduct))
	assert.Equal(t, 20.0, radii.For(KindAvailability))
}

func TestPagePolicy_ParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     string
		size     string
		want     PageRequest
		wantErr  error
		wantSkip int
	}{
		{name: "defaults", want: PageRequest{Page: 1, PageSize: 20}},
		{name: "explicit", page: "3", size: "50", want: PageRequest{Page: 3, PageSize: 50}, wantSkip: 100},
		{name: "size capped at max", size: "500", want: PageRequest{Page: 1, PageSize: 100}},
		{name: "non numeric size falls back", size: "lots", want: PageRequest{Page: 1, PageSize: 20}},
		{name: "zero size falls back", size: "0", want: PageRequest{Page: 1, PageSize: 20}},
		{name: "zero page", page: "0", wantErr: domainerrors.ErrInvalidPage},
		{name: "non numeric page", page: "last", wantErr: domainerrors.ErrInvalidPage},
		{name: "page beyond int range", page: "9223372036854775808", wantErr: domainerrors.ErrInvalidPage},
		{name: "offset would wrap to zero", page: "4611686018427387905", size: "4", wantErr: domainerrors.ErrPageNotFound},
		{name: "offset would go negative", page: "9223372036854775807", size: "20", wantErr: domainerrors.ErrPageNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DefaultPagePolicy.ParsePage(tt.page, tt.size)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSkip, got.Offset())
		})
	}
}

func TestPageRequest_OffsetSaturates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, PageRequest{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, PageRequest{Page: 3, PageSize: 20}.Offset())
	assert.Equal(t, math.MaxInt, PageRequest{Page: math.MaxInt, PageSize: 20}.Offset())
	assert.Equal(t, math.MaxInt, PageRequest{Page: math.MaxInt/4 + 2, PageSize: 4}.Offset())
}

func TestPage_Metadata(t *testing.T) {
	t.Parallel()

	p := &Page[int]{Total: 41, Page: 2, PageSize: 20}
	assert.Equal(t, 3, p.TotalPages())
	assert.True(t, p.HasNext())
	assert.True(t, p.HasPrevious())

	empty := &Page[int]{Page: 1, PageSize: 20}
	assert.Equal(t, 1, empty.TotalPages())
	assert.False(t, empty.HasNext())
	assert.False(t, empty.HasPrevious())
}
