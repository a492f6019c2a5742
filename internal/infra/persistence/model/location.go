package model

import (
	"context"
	"database/sql/driver"
	"encoding/hex"
	"fmt"

	"soko/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// Location is a PostGIS geography(Point,4326) column.
// Writes go through ST_MakePoint; reads decode the (hex) EWKB PostGIS returns.
type Location struct {
	Lon float64
	Lat float64
}

// NewLocation converts a domain point.
func NewLocation(p entity.GeoPoint) Location {
	return Location{Lon: p.Lon, Lat: p.Lat}
}

// GeoPoint converts back to the domain point.
func (l Location) GeoPoint() entity.GeoPoint {
	return entity.GeoPoint{Lon: l.Lon, Lat: l.Lat}
}

// GormDataType implements schema.GormDataTypeInterface.
func (Location) GormDataType() string {
	return "geography(Point,4326)"
}

// GormDBDataType implements migrator.GormDBDataTypeInterface.
func (Location) GormDBDataType(*gorm.DB, *schema.Field) string {
	return "geography(Point,4326)"
}

// GormValue implements gorm.Valuer.
func (l Location) GormValue(_ context.Context, _ *gorm.DB) clause.Expr {
	return clause.Expr{
		SQL:  "ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography",
		Vars: []any{l.Lon, l.Lat},
	}
}

// Value implements driver.Valuer for drivers that bypass GormValue.
func (l Location) Value() (driver.Value, error) {
	return fmt.Sprintf("SRID=%d;POINT(%v %v)", entity.SRID, l.Lon, l.Lat), nil
}

// Scan implements sql.Scanner.
func (l *Location) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*l = Location{}

		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported location type %T", value)
	}

	// Text protocol returns hex encoded EWKB, binary protocol raw EWKB.
	if len(raw) > 0 && (raw[0] == '0') {
		decoded := make([]byte, hex.DecodedLen(len(raw)))
		n, err := hex.Decode(decoded, raw)
		if err != nil {
			return fmt.Errorf("decode location hex: %w", err)
		}
		raw = decoded[:n]
	}

	geom, _, err := ewkb.Unmarshal(raw)
	if err != nil {
		return fmt.Errorf("decode location ewkb: %w", err)
	}

	pt, ok := geom.(orb.Point)
	if !ok {
		return fmt.Errorf("location is a %s, not a point", geom.GeoJSONType())
	}
	l.Lon, l.Lat = pt.Lon(), pt.Lat()

	return nil
}
