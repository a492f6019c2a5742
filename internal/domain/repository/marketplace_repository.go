package repository

import (
	"context"

	"soko/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryRepository persists listing categories.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *entity.Category) error
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}

// ServiceRequestRepository persists bookings.
type ServiceRequestRepository interface {
	CreateServiceRequest(ctx context.Context, request *entity.ServiceRequest) error
	FindServiceRequestByID(ctx context.Context, id uuid.UUID) (*entity.ServiceRequest, error)

	// UpdateServiceRequestStatus moves a request from one status to the next.
	// It fails with ErrInvalidStatusTransition when the stored status is not from.
	UpdateServiceRequestStatus(ctx context.Context, id uuid.UUID, from, to entity.RequestStatus) error

	ListServiceRequestsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.ServiceRequest, error)
	ListServiceRequestsByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.ServiceRequest, error)
}

// ReviewRepository persists reviews.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review *entity.Review) error
	ListReviewsByTarget(ctx context.Context, target entity.ReviewTarget, targetID uuid.UUID) ([]*entity.Review, error)
}

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// CreateUser returns ErrUserAlreadyExists on a duplicate username or email.
	CreateUser(ctx context.Context, user *entity.User) error
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindUserByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdateProfilePicture(ctx context.Context, id uuid.UUID, url string) error
}
