// Package proximity turns client supplied coordinates into radius-filtered,
// distance-ordered, paginated result pages over any geotagged listing store.
//
// The package is transport agnostic: handlers hand it raw query values and
// receive typed queries or AppErrors back.
package proximity

import (
	"math"
	"strconv"
	"strings"

	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/errors"
)

// Kind identifies the collection a query runs against. It selects the
// default radius.
type Kind string

const (
	KindBusiness       Kind = "business"
	KindProduct        Kind = "product"
	KindService        Kind = "service"
	KindNearbyBusiness Kind = "nearby_business"
	KindAvailability   Kind = "availability"
)

// Policy decides what a query without an origin returns.
type Policy int

const (
	// PolicyUnfilteredWithoutOrigin returns the whole scoped collection in
	// primary key order. General list endpoints use it.
	PolicyUnfilteredWithoutOrigin Policy = iota
	// PolicyEmptyWithoutOrigin returns no results. The dedicated nearby
	// endpoint uses it.
	PolicyEmptyWithoutOrigin
)

// Radii maps a Kind to its default radius in kilometers.
type Radii map[Kind]float64

// DefaultRadii are the radii used when the client omits one.
func DefaultRadii() Radii {
	return Radii{
		KindBusiness:       10,
		KindProduct:        10,
		KindService:        20,
		KindNearbyBusiness: 5,
		KindAvailability:   20,
	}
}

// For returns the default radius of kind, falling back to the built-in table.
func (r Radii) For(kind Kind) float64 {
	if km, ok := r[kind]; ok && km > 0 {
		return km
	}

	return DefaultRadii()[kind]
}

// RawParams are the untouched query string values. Empty means absent.
type RawParams struct {
	Lat    string
	Lng    string
	Radius string
}

// Query is the validated, per-request proximity query.
type Query struct {
	Origin   *entity.GeoPoint
	RadiusKm float64
	Kind     Kind
	Policy   Policy
}

// HasOrigin reports whether the query filters by distance.
func (q Query) HasOrigin() bool {
	return q.Origin != nil
}

// RadiusMeters converts the kilometer radius used at the boundary.
func (q Query) RadiusMeters() float64 {
	return q.RadiusKm * 1000
}

// ParseQuery validates raw coordinates and radius for kind.
//
// Both lat and lng absent yields a query without origin. Supplying only one
// of them, a non-numeric or out of range value, or a radius that is not a
// positive finite number is a client error.
func ParseQuery(raw RawParams, kind Kind, policy Policy, radii Radii) (Query, error) {
	q := Query{
		RadiusKm: radii.For(kind),
		Kind:     kind,
		Policy:   policy,
	}

	if radius := strings.TrimSpace(raw.Radius); radius != "" {
		km, err := parseFinite(radius)
		if err != nil || km <= 0 {
			return Query{}, domainerrors.ErrInvalidRadius.WithDetails("radius=" + raw.Radius)
		}
		q.RadiusKm = km
	}

	lat := strings.TrimSpace(raw.Lat)
	lng := strings.TrimSpace(raw.Lng)
	switch {
	case lat == "" && lng == "":
		return q, nil
	case lat == "" || lng == "":
		return Query{}, domainerrors.ErrInvalidCoordinates.WithDetails("lat and lng must be supplied together")
	}

	latV, err := parseFinite(lat)
	if err != nil {
		return Query{}, domainerrors.ErrInvalidCoordinates.WithDetails("lat=" + raw.Lat)
	}
	lngV, err := parseFinite(lng)
	if err != nil {
		return Query{}, domainerrors.ErrInvalidCoordinates.WithDetails("lng=" + raw.Lng)
	}

	origin, err := entity.NewGeoPoint(lngV, latV)
	if err != nil {
		return Query{}, err
	}
	q.Origin = &origin

	return q, nil
}

var errNotFinite = errors.New("value is not finite")

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}

	return v, nil
}
