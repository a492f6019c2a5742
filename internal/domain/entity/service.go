package entity

import (
	"time"

	"github.com/google/uuid"
)

// Service is an offering published by a SERVICE account.
type Service struct {
	ID            uuid.UUID
	ProviderID    uuid.UUID
	Title         string
	Description   string
	CategoryID    *uuid.UUID
	HourlyRate    *float64
	FixedPrice    *float64
	Location      GeoPoint
	AIDescription string
	Verified      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// GetID implements Identifiable.
func (s *Service) GetID() uuid.UUID { return s.ID }

// GetLocation implements Geotagged.
func (s *Service) GetLocation() GeoPoint { return s.Location }
