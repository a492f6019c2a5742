// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"soko/internal/domain/entity"
	"soko/internal/domain/proximity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as seen by the use cases.
type Actor struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// IsAdmin reports whether the caller carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.Roles.Contains(entity.RoleAdmin)
}

// SearchInput carries the raw proximity and paging values of a list request
// plus the optional filters a list endpoint accepts.
type SearchInput struct {
	Params     proximity.RawParams
	Page       string
	PageSize   string
	CategoryID *uuid.UUID
	ParentID   *uuid.UUID
}

// --- Businesses ---

// BusinessInput defines the data required to create a business.
type BusinessInput struct {
	Name         string
	Description  string
	CategoryID   *uuid.UUID
	Location     *entity.GeoPoint
	Address      string
	ContactEmail string
	ContactPhone string
}

// UpdateBusinessInput is a partial update; nil fields are left unchanged.
type UpdateBusinessInput struct {
	Name         *string
	Description  *string
	CategoryID   *uuid.UUID
	Location     *entity.GeoPoint
	Address      *string
	ContactEmail *string
	ContactPhone *string
}

// BusinessUsecase manages storefronts.
type BusinessUsecase interface {
	CreateBusiness(ctx context.Context, actor Actor, input *BusinessInput) (*entity.Business, error)
	GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// ListBusinesses filters by distance only when an origin is supplied.
	ListBusinesses(ctx context.Context, input *SearchInput) (*proximity.Page[*entity.Business], error)

	// NearbyBusinesses returns nothing when no origin is supplied.
	NearbyBusinesses(ctx context.Context, input *SearchInput) (*proximity.Page[*entity.Business], error)

	UpdateBusiness(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateBusinessInput) (*entity.Business, error)

	// DeleteBusiness removes the business together with its products.
	DeleteBusiness(ctx context.Context, actor Actor, id uuid.UUID) error
}

// --- Products ---

// ProductInput defines the data required to create a product.
type ProductInput struct {
	BusinessID  uuid.UUID
	Name        string
	Description string
	Price       float64
	CategoryID  *uuid.UUID
	Condition   entity.ProductCondition
	Location    *entity.GeoPoint
	Stock       int
}

// UpdateProductInput is a partial update; nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	CategoryID  *uuid.UUID
	Condition   *entity.ProductCondition
	Location    *entity.GeoPoint
	Stock       *int
}

// ProductUsecase manages the products of a business.
type ProductUsecase interface {
	// CreateProduct also submits a background tag job for the description.
	CreateProduct(ctx context.Context, actor Actor, input *ProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts scopes by business through SearchInput.ParentID.
	ListProducts(ctx context.Context, input *SearchInput) (*proximity.Page[*entity.Product], error)
	UpdateProduct(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, actor Actor, id uuid.UUID) error
}

// --- Services ---

// ServiceInput defines the data required to publish a service.
type ServiceInput struct {
	Title       string
	Description string
	CategoryID  *uuid.UUID
	HourlyRate  *float64
	FixedPrice  *float64
	Location    *entity.GeoPoint
}

// UpdateServiceInput is a partial update; nil fields are left unchanged.
type UpdateServiceInput struct {
	Title       *string
	Description *string
	CategoryID  *uuid.UUID
	HourlyRate  *float64
	FixedPrice  *float64
	Location    *entity.GeoPoint
}

// ServiceUsecase manages services offered by providers.
type ServiceUsecase interface {
	CreateService(ctx context.Context, actor Actor, input *ServiceInput) (*entity.Service, error)
	GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	ListServices(ctx context.Context, input *SearchInput) (*proximity.Page[*entity.Service], error)

	// ListMyServices is ListServices restricted to the caller's services.
	ListMyServices(ctx context.Context, actor Actor, input *SearchInput) (*proximity.Page[*entity.Service], error)
	UpdateService(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateServiceInput) (*entity.Service, error)
	DeleteService(ctx context.Context, actor Actor, id uuid.UUID) error

	// VerifyService marks a service verified. Admin only.
	VerifyService(ctx context.Context, actor Actor, id uuid.UUID) error
}

// --- Availability ---

// AvailabilityInput defines a new slot.
type AvailabilityInput struct {
	ServiceID uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

// AvailabilityUsecase manages the bookable slots of the caller's services.
type AvailabilityUsecase interface {
	// ListMyAvailability combines the ownership predicate with the optional
	// radius filter measured from each slot's service.
	ListMyAvailability(ctx context.Context, actor Actor, input *SearchInput) (*proximity.Page[*entity.Availability], error)
	CreateAvailability(ctx context.Context, actor Actor, input *AvailabilityInput) (*entity.Availability, error)
	DeleteAvailability(ctx context.Context, actor Actor, id uuid.UUID) error
}
