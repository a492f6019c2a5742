package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceRequestModel is the GORM-specific struct for the 'service_requests' table.
type ServiceRequestModel struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey"`
	ServiceID     uuid.UUID     `gorm:"type:uuid;not null;index"`
	Service       *ServiceModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	ProviderID    uuid.UUID     `gorm:"type:uuid;not null;index"`
	CustomerID    uuid.UUID     `gorm:"type:uuid;not null;index"`
	Customer      *UserModel    `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Message       string        `gorm:"type:text"`
	Status        string        `gorm:"type:varchar(10);not null;default:PENDING"`
	ScheduledDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceRequestModel) TableName() string {
	return "service_requests"
}

// ReviewModel is the GORM-specific struct for the 'reviews' table.
type ReviewModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ReviewerID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Reviewer   *UserModel `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE"`
	TargetType string     `gorm:"type:varchar(20);not null;index:idx_reviews_target"`
	TargetID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_reviews_target"`
	Rating     int        `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment    string     `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// All lists every model in dependency order for migrations.
func All() []any {
	return []any{
		&UserModel{},
		&CategoryModel{},
		&BusinessModel{},
		&ProductModel{},
		&ServiceModel{},
		&AvailabilityModel{},
		&ServiceRequestModel{},
		&ReviewModel{},
	}
}
