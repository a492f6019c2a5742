// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"soko/internal/domain/entity"
	"soko/internal/domain/proximity"

	"github.com/google/uuid"
)

// BusinessRepository persists businesses. As a listing store, Scope.OwnerID
// is the owning account and Scope.CategoryID the category.
type BusinessRepository interface {
	proximity.ListingStore[*entity.Business]

	// CreateBusiness persists a new business and fills generated fields.
	CreateBusiness(ctx context.Context, business *entity.Business) error

	// FindBusinessByID returns ErrBusinessNotFound when the id is unknown.
	FindBusinessByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// UpdateBusiness overwrites the mutable fields, location included.
	UpdateBusiness(ctx context.Context, business *entity.Business) error

	// DeleteBusiness removes the business row.
	DeleteBusiness(ctx context.Context, id uuid.UUID) error
}

// ProductRepository persists products. As a listing store, Scope.OwnerID is
// the owner of the parent business and Scope.ParentID the business.
type ProductRepository interface {
	proximity.ListingStore[*entity.Product]

	CreateProduct(ctx context.Context, product *entity.Product) error
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	UpdateProduct(ctx context.Context, product *entity.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// DeleteProductsByBusiness removes every product of a business.
	DeleteProductsByBusiness(ctx context.Context, businessID uuid.UUID) error

	// UpdateProductTags replaces the machine generated tags.
	UpdateProductTags(ctx context.Context, id uuid.UUID, tags []string) error
}

// ServiceRepository persists services. As a listing store, Scope.OwnerID is
// the provider.
type ServiceRepository interface {
	proximity.ListingStore[*entity.Service]

	CreateService(ctx context.Context, service *entity.Service) error
	FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	UpdateService(ctx context.Context, service *entity.Service) error
	DeleteService(ctx context.Context, id uuid.UUID) error

	// SetServiceVerified flips the admin verification flag.
	SetServiceVerified(ctx context.Context, id uuid.UUID, verified bool) error

	// ListServiceTitles returns every service title in id order.
	ListServiceTitles(ctx context.Context) ([]string, error)
}

// AvailabilityRepository persists slots. As a listing store, Scope.OwnerID is
// the provider of the parent service and Scope.ParentID the service; the
// distance is measured from the service location.
type AvailabilityRepository interface {
	proximity.ListingStore[*entity.Availability]

	CreateAvailability(ctx context.Context, slot *entity.Availability) error
	FindAvailabilityByID(ctx context.Context, id uuid.UUID) (*entity.Availability, error)
	DeleteAvailability(ctx context.Context, id uuid.UUID) error
}
