package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username      string    `gorm:"type:varchar(150);not null;uniqueIndex"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	UserType      string    `gorm:"type:varchar(10);not null;default:CUSTOMER"`
	IsAdmin       bool      `gorm:"not null;default:false"`
	Phone         string    `gorm:"type:varchar(15)"`
	Location      Location  `gorm:"not null"`
	Address       string    `gorm:"type:text"`
	ProfilePicURL string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Icon string    `gorm:"type:varchar(50);not null;default:bi-box"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
