package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReviewTarget names the kind of listing a review is attached to.
type ReviewTarget string

const (
	ReviewTargetBusiness ReviewTarget = "business"
	ReviewTargetProduct  ReviewTarget = "product"
	ReviewTargetService  ReviewTarget = "service"
)

// IsValid checks if the ReviewTarget is a known value.
func (t ReviewTarget) IsValid() bool {
	switch t {
	case ReviewTargetBusiness, ReviewTargetProduct, ReviewTargetService:
		return true
	default:
		return false
	}
}

// Review is a 1-5 star rating of a listing.
type Review struct {
	ID         uuid.UUID
	ReviewerID uuid.UUID
	TargetType ReviewTarget
	TargetID   uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}
