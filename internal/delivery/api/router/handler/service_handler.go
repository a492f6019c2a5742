package handler

import (
	"log/slog"
	"net/http"

	"soko/internal/delivery/api/response"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServiceHandlerParams holds dependencies for ServiceHandler, injected by Fx.
type ServiceHandlerParams struct {
	fx.In

	ServiceUC usecase.ServiceUsecase
	Logger    *slog.Logger
}

// ServiceHandler serves the endpoints of provider services.
type ServiceHandler struct {
	serviceUC usecase.ServiceUsecase
	logger    *slog.Logger
}

// NewServiceHandler is the constructor for ServiceHandler
func NewServiceHandler(params ServiceHandlerParams) *ServiceHandler {
	return &ServiceHandler{
		serviceUC: params.ServiceUC,
		logger:    params.Logger,
	}
}

// CreateServiceRequest represents the request body for publishing a service
type CreateServiceRequest struct {
	Title       string        `json:"title" validate:"required,max=255"`
	Description string        `json:"description"`
	Category    *uuid.UUID    `json:"category"`
	HourlyRate  *float64      `json:"hourly_rate" validate:"omitempty,gte=0"`
	FixedPrice  *float64      `json:"fixed_price" validate:"omitempty,gte=0"`
	Location    *locationBody `json:"location"`
}

// UpdateServiceRequest is a partial update; omitted fields are unchanged.
type UpdateServiceRequest struct {
	Title       *string       `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string       `json:"description"`
	Category    *uuid.UUID    `json:"category"`
	HourlyRate  *float64      `json:"hourly_rate" validate:"omitempty,gte=0"`
	FixedPrice  *float64      `json:"fixed_price" validate:"omitempty,gte=0"`
	Location    *locationBody `json:"location"`
}

// CreateService handles POST /services
func (h *ServiceHandler) CreateService(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateServiceRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	location, err := req.Location.point()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	svc, err := h.serviceUC.CreateService(c.Request().Context(), actor, &usecase.ServiceInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.Category,
		HourlyRate:  req.HourlyRate,
		FixedPrice:  req.FixedPrice,
		Location:    location,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, presentService(svc, nil))
}

// GetService handles GET /services/:id
func (h *ServiceHandler) GetService(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	svc, err := h.serviceUC.GetService(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentService(svc, nil))
}

// ListServices handles GET /services
func (h *ServiceHandler) ListServices(c echo.Context) error {
	input := searchInput(c)
	category, err := optionalQueryID(c, "category")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	input.CategoryID = category

	page, err := h.serviceUC.ListServices(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return presentPage(c, page, presentService)
}

// ListMyServices handles GET /services/mine
func (h *ServiceHandler) ListMyServices(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := searchInput(c)
	category, err := optionalQueryID(c, "category")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	input.CategoryID = category

	page, err := h.serviceUC.ListMyServices(c.Request().Context(), actor, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return presentPage(c, page, presentService)
}

// UpdateService handles PATCH/PUT /services/:id
func (h *ServiceHandler) UpdateService(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateServiceRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	location, err := req.Location.point()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	svc, err := h.serviceUC.UpdateService(c.Request().Context(), actor, id, &usecase.UpdateServiceInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.Category,
		HourlyRate:  req.HourlyRate,
		FixedPrice:  req.FixedPrice,
		Location:    location,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentService(svc, nil))
}

// DeleteService handles DELETE /services/:id
func (h *ServiceHandler) DeleteService(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.serviceUC.DeleteService(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// VerifyService handles POST /services/:id/verify (admin)
func (h *ServiceHandler) VerifyService(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.serviceUC.VerifyService(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "verified"})
}
