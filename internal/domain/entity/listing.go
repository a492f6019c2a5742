package entity

import "github.com/google/uuid"

// Identifiable exposes the primary key used for deterministic tie-breaks.
type Identifiable interface {
	GetID() uuid.UUID
}

// Geotagged is any listing that carries exactly one location.
type Geotagged interface {
	Identifiable
	GetLocation() GeoPoint
}
