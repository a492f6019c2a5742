package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserType decides which listings an account may publish.
type UserType string

const (
	UserTypeCustomer UserType = "CUSTOMER"
	UserTypeBusiness UserType = "BUSINESS"
	UserTypeService  UserType = "SERVICE"
)

// IsValid checks if the UserType is a known value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeCustomer, UserTypeBusiness, UserTypeService:
		return true
	default:
		return false
	}
}

// User is a marketplace account.
type User struct {
	ID            uuid.UUID
	Username      string
	Email         string
	PasswordHash  string
	UserType      UserType
	IsAdmin       bool
	Phone         string
	Location      GeoPoint
	Address       string
	ProfilePicURL string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Roles derives the token roles for the account.
func (u *User) Roles() Roles {
	roles := Roles{RoleFromUserType(u.UserType)}
	if u.IsAdmin {
		roles = append(roles, RoleAdmin)
	}

	return roles
}
