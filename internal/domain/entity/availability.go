package entity

import (
	"time"

	"github.com/google/uuid"
)

// Availability is a bookable slot of a service. It has no location of its
// own; proximity queries use the location of the parent service.
type Availability struct {
	ID         uuid.UUID
	ServiceID  uuid.UUID
	ProviderID uuid.UUID
	Location   GeoPoint
	StartTime  time.Time
	EndTime    time.Time
	CreatedAt  time.Time
}

// GetID implements Identifiable.
func (a *Availability) GetID() uuid.UUID { return a.ID }

// GetLocation implements Geotagged.
func (a *Availability) GetLocation() GeoPoint { return a.Location }
