// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"math"

	domainerrors "soko/internal/domain/errors"

	"github.com/paulmach/orb"
)

// Coordinate bounds for WGS84 (SRID 4326).
const (
	MinLongitude = -180.0
	MaxLongitude = 180.0
	MinLatitude  = -90.0
	MaxLatitude  = 90.0

	// SRID is the spatial reference every stored location uses.
	SRID = 4326
)

// GeoPoint is a WGS84 position stored longitude first.
// Values are immutable; an update replaces the whole point.
type GeoPoint struct {
	Lon float64
	Lat float64
}

// UnsetPoint is attached to listings whose real location is not known yet.
var UnsetPoint = GeoPoint{}

// NewGeoPoint builds a validated point.
func NewGeoPoint(lon, lat float64) (GeoPoint, error) {
	p := GeoPoint{Lon: lon, Lat: lat}
	if err := p.Validate(); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks both axes are finite and inside the WGS84 range.
func (p GeoPoint) Validate() error {
	if math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) || p.Lon < MinLongitude || p.Lon > MaxLongitude {
		return domainerrors.ErrInvalidCoordinates.WithDetails("longitude must be within [-180, 180]")
	}
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || p.Lat < MinLatitude || p.Lat > MaxLatitude {
		return domainerrors.ErrInvalidCoordinates.WithDetails("latitude must be within [-90, 90]")
	}

	return nil
}

// IsUnset reports whether p is the (0,0) placeholder.
func (p GeoPoint) IsUnset() bool {
	return p == UnsetPoint
}

// Point converts to the orb representation used by geo math and WKB codecs.
func (p GeoPoint) Point() orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

// GeoPointFromOrb is the inverse of Point.
func GeoPointFromOrb(pt orb.Point) GeoPoint {
	return GeoPoint{Lon: pt.Lon(), Lat: pt.Lat()}
}
