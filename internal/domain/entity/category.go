package entity

import "github.com/google/uuid"

// DefaultCategoryIcon is used when a category is created without an icon.
const DefaultCategoryIcon = "bi-box"

// Category groups listings of every kind.
type Category struct {
	ID   uuid.UUID
	Name string
	Icon string
}
