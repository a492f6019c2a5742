package handler

import (
	"log/slog"
	"net/http"
	"time"

	"soko/internal/delivery/api/response"
	"soko/internal/domain/entity"
	domainerrors "soko/internal/domain/errors"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MarketplaceHandlerParams holds dependencies for MarketplaceHandler, injected by Fx.
type MarketplaceHandlerParams struct {
	fx.In

	CategoryUC       usecase.CategoryUsecase
	ServiceRequestUC usecase.ServiceRequestUsecase
	ReviewUC         usecase.ReviewUsecase
	Logger           *slog.Logger
}

// MarketplaceHandler serves categories, bookings and reviews.
type MarketplaceHandler struct {
	categoryUC       usecase.CategoryUsecase
	serviceRequestUC usecase.ServiceRequestUsecase
	reviewUC         usecase.ReviewUsecase
	logger           *slog.Logger
}

// NewMarketplaceHandler is the constructor for MarketplaceHandler
func NewMarketplaceHandler(params MarketplaceHandlerParams) *MarketplaceHandler {
	return &MarketplaceHandler{
		categoryUC:       params.CategoryUC,
		serviceRequestUC: params.ServiceRequestUC,
		reviewUC:         params.ReviewUC,
		logger:           params.Logger,
	}
}

// CreateCategoryRequest represents the request body for a new category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Icon string `json:"icon" validate:"max=50"`
}

// CreateServiceRequestRequest represents a customer's booking
type CreateServiceRequestRequest struct {
	Service       uuid.UUID  `json:"service" validate:"required"`
	Message       string     `json:"message" validate:"required"`
	ScheduledDate *time.Time `json:"scheduled_date"`
}

// UpdateServiceRequestStatusRequest carries the provider's decision
type UpdateServiceRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING ACCEPTED COMPLETED REJECTED"`
}

// CreateReviewRequest represents a rating of a listing
type CreateReviewRequest struct {
	TargetType string    `json:"target_type" validate:"required,oneof=business product service"`
	TargetID   uuid.UUID `json:"target_id" validate:"required"`
	Rating     int       `json:"rating" validate:"required,min=1,max=5"`
	Comment    string    `json:"comment"`
}

// ListCategories handles GET /categories
func (h *MarketplaceHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentAll(categories, presentCategory))
}

// CreateCategory handles POST /categories (admin)
func (h *MarketplaceHandler) CreateCategory(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateCategoryRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), actor, req.Name, req.Icon)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, presentCategory(category))
}

// CreateServiceRequest handles POST /service-requests
func (h *MarketplaceHandler) CreateServiceRequest(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateServiceRequestRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	request, err := h.serviceRequestUC.CreateServiceRequest(c.Request().Context(), actor, &usecase.ServiceRequestInput{
		ServiceID:     req.Service,
		Message:       req.Message,
		ScheduledDate: req.ScheduledDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, presentServiceRequest(request))
}

// ListServiceRequests handles GET /service-requests?side=customer|provider
func (h *MarketplaceHandler) ListServiceRequests(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	side := usecase.RequestSide(c.QueryParam("side"))
	requests, err := h.serviceRequestUC.ListMyServiceRequests(c.Request().Context(), actor, side)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentAll(requests, presentServiceRequest))
}

// UpdateServiceRequestStatus handles PATCH /service-requests/:id/status
func (h *MarketplaceHandler) UpdateServiceRequestStatus(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateServiceRequestStatusRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	request, err := h.serviceRequestUC.UpdateServiceRequestStatus(c.Request().Context(), actor, id, entity.RequestStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentServiceRequest(request))
}

// CreateReview handles POST /reviews
func (h *MarketplaceHandler) CreateReview(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateReviewRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), actor, &usecase.ReviewInput{
		TargetType: entity.ReviewTarget(req.TargetType),
		TargetID:   req.TargetID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, presentReview(review))
}

// ListReviews handles GET /reviews?target_type=&target_id=
func (h *MarketplaceHandler) ListReviews(c echo.Context) error {
	target := entity.ReviewTarget(c.QueryParam("target_type"))
	if !target.IsValid() {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("target_type must be business, product or service"))
	}

	targetID, err := optionalQueryID(c, "target_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if targetID == nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("target_id is required"))
	}

	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), target, *targetID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentAll(reviews, presentReview))
}
