package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel is the GORM-specific struct for the 'businesses' table.
type BusinessModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Owner        *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Name         string     `gorm:"type:varchar(100);not null"`
	Description  string     `gorm:"type:text;not null"`
	CategoryID   *uuid.UUID `gorm:"type:uuid;index"`
	Location     Location   `gorm:"not null;index:idx_businesses_location,type:gist"`
	Address      string     `gorm:"type:text;not null"`
	ContactEmail string     `gorm:"type:varchar(255)"`
	ContactPhone string     `gorm:"type:varchar(15)"`
	Verified     bool       `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}

// ProductModel is the GORM-specific struct for the 'products' table.
// OwnerID is not a column; listing queries fill it from the parent business.
type ProductModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	BusinessID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Business    *BusinessModel `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	OwnerID     uuid.UUID      `gorm:"->;-:migration"`
	Name        string         `gorm:"type:varchar(100);not null"`
	Description string         `gorm:"type:text;not null"`
	Price       float64        `gorm:"type:numeric(10,2);not null"`
	CategoryID  *uuid.UUID     `gorm:"type:uuid;index"`
	Condition   string         `gorm:"type:varchar(10);not null;default:NEW"`
	Location    Location       `gorm:"not null;index:idx_products_location,type:gist"`
	Stock       int            `gorm:"not null;default:1"`
	AITags      []string       `gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ServiceModel is the GORM-specific struct for the 'services' table.
type ServiceModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProviderID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Provider      *UserModel `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
	Title         string     `gorm:"type:varchar(100);not null"`
	Description   string     `gorm:"type:text;not null"`
	CategoryID    *uuid.UUID `gorm:"type:uuid;index"`
	HourlyRate    *float64   `gorm:"type:numeric(8,2)"`
	FixedPrice    *float64   `gorm:"type:numeric(10,2)"`
	Location      Location   `gorm:"not null;index:idx_services_location,type:gist"`
	AIDescription string     `gorm:"type:text"`
	Verified      bool       `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

// AvailabilityModel is the GORM-specific struct for the 'availabilities' table.
// ProviderID and Location come from the parent service in listing queries.
type AvailabilityModel struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	ServiceID  uuid.UUID     `gorm:"type:uuid;not null;index"`
	Service    *ServiceModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	ProviderID uuid.UUID     `gorm:"->;-:migration"`
	Location   Location      `gorm:"->;-:migration"`
	StartTime  time.Time     `gorm:"not null"`
	EndTime    time.Time     `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AvailabilityModel) TableName() string {
	return "availabilities"
}
