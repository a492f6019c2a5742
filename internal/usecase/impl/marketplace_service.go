package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/domain/repository"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// --- Categories ---

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates the category use cases.
func NewCategoryService(categoryRepo repository.CategoryRepository) usecase.CategoryUsecase {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, actor usecase.Actor, name, icon string) (*entity.Category, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if strings.TrimSpace(icon) == "" {
		icon = entity.DefaultCategoryIcon
	}

	category := &entity.Category{ID: newID(), Name: name, Icon: icon}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// --- Service requests ---

type serviceRequestService struct {
	requestRepo repository.ServiceRequestRepository
	serviceRepo repository.ServiceRepository
	logger      *slog.Logger
}

// NewServiceRequestService creates the booking use cases.
func NewServiceRequestService(
	requestRepo repository.ServiceRequestRepository,
	serviceRepo repository.ServiceRepository,
	logger *slog.Logger,
) usecase.ServiceRequestUsecase {
	return &serviceRequestService{
		requestRepo: requestRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

func (s *serviceRequestService) CreateServiceRequest(ctx context.Context, actor usecase.Actor, input *usecase.ServiceRequestInput) (*entity.ServiceRequest, error) {
	svc, err := s.serviceRepo.FindServiceByID(ctx, input.ServiceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service")
	}
	if svc.ProviderID == actor.UserID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("providers cannot book their own service")
	}

	request := &entity.ServiceRequest{
		ID:            newID(),
		ServiceID:     svc.ID,
		ProviderID:    svc.ProviderID,
		CustomerID:    actor.UserID,
		Message:       input.Message,
		Status:        entity.RequestPending,
		ScheduledDate: input.ScheduledDate,
	}
	if err := s.requestRepo.CreateServiceRequest(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create service request")
	}
	s.logger.Debug("Service request created", "requestID", request.ID, "serviceID", svc.ID)

	return request, nil
}

func (s *serviceRequestService) ListMyServiceRequests(ctx context.Context, actor usecase.Actor, side usecase.RequestSide) ([]*entity.ServiceRequest, error) {
	var (
		requests []*entity.ServiceRequest
		err      error
	)
	switch side {
	case usecase.RequestSideProvider:
		requests, err = s.requestRepo.ListServiceRequestsByProvider(ctx, actor.UserID)
	case usecase.RequestSideCustomer, "":
		requests, err = s.requestRepo.ListServiceRequestsByCustomer(ctx, actor.UserID)
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be customer or provider")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service requests")
	}

	return requests, nil
}

func (s *serviceRequestService) UpdateServiceRequestStatus(ctx context.Context, actor usecase.Actor, id uuid.UUID, status entity.RequestStatus) (*entity.ServiceRequest, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(status))
	}

	request, err := s.requestRepo.FindServiceRequestByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service request")
	}
	if err := requireOwner(actor, request.ProviderID); err != nil {
		return nil, err
	}
	if !request.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(string(request.Status) + " -> " + string(status))
	}

	if err := s.requestRepo.UpdateServiceRequestStatus(ctx, id, request.Status, status); err != nil {
		return nil, errors.Wrap(err, "failed to update service request")
	}
	request.Status = status

	return request, nil
}

// --- Reviews ---

type reviewService struct {
	reviewRepo   repository.ReviewRepository
	businessRepo repository.BusinessRepository
	productRepo  repository.ProductRepository
	serviceRepo  repository.ServiceRepository
}

// NewReviewService creates the review use cases.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	businessRepo repository.BusinessRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:   reviewRepo,
		businessRepo: businessRepo,
		productRepo:  productRepo,
		serviceRepo:  serviceRepo,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, actor usecase.Actor, input *usecase.ReviewInput) (*entity.Review, error) {
	if !input.TargetType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown target " + string(input.TargetType))
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}
	if err := s.targetExists(ctx, input.TargetType, input.TargetID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:         newID(),
		ReviewerID: actor.UserID,
		TargetType: input.TargetType,
		TargetID:   input.TargetID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	return review, nil
}

func (s *reviewService) targetExists(ctx context.Context, target entity.ReviewTarget, id uuid.UUID) error {
	var err error
	switch target {
	case entity.ReviewTargetBusiness:
		_, err = s.businessRepo.FindBusinessByID(ctx, id)
	case entity.ReviewTargetProduct:
		_, err = s.productRepo.FindProductByID(ctx, id)
	case entity.ReviewTargetService:
		_, err = s.serviceRepo.FindServiceByID(ctx, id)
	}
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() == http.StatusNotFound {
		return domainerrors.ErrReviewTargetNotFound.WithDetails(string(target) + " " + id.String())
	}

	return errors.Wrap(err, "failed to find review target")
}

func (s *reviewService) ListReviews(ctx context.Context, target entity.ReviewTarget, targetID uuid.UUID) ([]*entity.Review, error) {
	if !target.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown target " + string(target))
	}
	reviews, err := s.reviewRepo.ListReviewsByTarget(ctx, target, targetID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}
