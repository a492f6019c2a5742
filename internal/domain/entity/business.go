package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is a storefront owned by a BUSINESS account. Products hang off it.
type Business struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Description  string
	CategoryID   *uuid.UUID
	Location     GeoPoint
	Address      string
	ContactEmail string
	ContactPhone string
	Verified     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GetID implements Identifiable.
func (b *Business) GetID() uuid.UUID { return b.ID }

// GetLocation implements Geotagged.
func (b *Business) GetLocation() GeoPoint { return b.Location }
