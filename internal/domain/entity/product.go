package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductCondition describes the wear of a product.
type ProductCondition string

const (
	ConditionNew         ProductCondition = "NEW"
	ConditionUsed        ProductCondition = "USED"
	ConditionRefurbished ProductCondition = "REFURB"
)

// IsValid checks if the ProductCondition is a known value.
func (c ProductCondition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionUsed, ConditionRefurbished:
		return true
	default:
		return false
	}
}

// Product is an item sold by a business. AITags is filled asynchronously.
type Product struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	OwnerID     uuid.UUID // owner of the parent business, denormalised for scoping
	Name        string
	Description string
	Price       float64
	CategoryID  *uuid.UUID
	Condition   ProductCondition
	Location    GeoPoint
	Stock       int
	AITags      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GetID implements Identifiable.
func (p *Product) GetID() uuid.UUID { return p.ID }

// GetLocation implements Geotagged.
func (p *Product) GetLocation() GeoPoint { return p.Location }
