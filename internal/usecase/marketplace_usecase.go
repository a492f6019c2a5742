package usecase

import (
	"context"
	"time"

	"soko/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryUsecase lists and creates listing categories.
type CategoryUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateCategory is admin only; an empty icon becomes the default icon.
	CreateCategory(ctx context.Context, actor Actor, name, icon string) (*entity.Category, error)
}

// ServiceRequestInput defines a booking request.
type ServiceRequestInput struct {
	ServiceID     uuid.UUID
	Message       string
	ScheduledDate *time.Time
}

// RequestSide selects which side of a booking the caller lists.
type RequestSide string

const (
	RequestSideCustomer RequestSide = "customer"
	RequestSideProvider RequestSide = "provider"
)

// ServiceRequestUsecase manages bookings between customers and providers.
type ServiceRequestUsecase interface {
	CreateServiceRequest(ctx context.Context, actor Actor, input *ServiceRequestInput) (*entity.ServiceRequest, error)
	ListMyServiceRequests(ctx context.Context, actor Actor, side RequestSide) ([]*entity.ServiceRequest, error)

	// UpdateServiceRequestStatus is reserved to the provider of the service.
	UpdateServiceRequestStatus(ctx context.Context, actor Actor, id uuid.UUID, status entity.RequestStatus) (*entity.ServiceRequest, error)
}

// ReviewInput defines a rating of a listing.
type ReviewInput struct {
	TargetType entity.ReviewTarget
	TargetID   uuid.UUID
	Rating     int
	Comment    string
}

// ReviewUsecase records and lists reviews.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, actor Actor, input *ReviewInput) (*entity.Review, error)
	ListReviews(ctx context.Context, target entity.ReviewTarget, targetID uuid.UUID) ([]*entity.Review, error)
}
