package handler

import (
	"log/slog"
	"net/http"
	"time"

	"soko/internal/delivery/api/response"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AvailabilityHandlerParams holds dependencies for AvailabilityHandler, injected by Fx.
type AvailabilityHandlerParams struct {
	fx.In

	AvailabilityUC usecase.AvailabilityUsecase
	Logger         *slog.Logger
}

// AvailabilityHandler serves the slots of the caller's services.
type AvailabilityHandler struct {
	availabilityUC usecase.AvailabilityUsecase
	logger         *slog.Logger
}

// NewAvailabilityHandler is the constructor for AvailabilityHandler
func NewAvailabilityHandler(params AvailabilityHandlerParams) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUC: params.AvailabilityUC,
		logger:         params.Logger,
	}
}

// CreateAvailabilityRequest represents the request body for a new slot
type CreateAvailabilityRequest struct {
	Service   uuid.UUID `json:"service" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
}

// ListAvailability handles GET /availability. Only the caller's slots are
// listed; lat/lng narrow them to slots whose service is within the radius.
func (h *AvailabilityHandler) ListAvailability(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := searchInput(c)
	service, err := optionalQueryID(c, "service")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	input.ParentID = service

	page, err := h.availabilityUC.ListMyAvailability(c.Request().Context(), actor, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return presentPage(c, page, presentAvailability)
}

// CreateAvailability handles POST /availability
func (h *AvailabilityHandler) CreateAvailability(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateAvailabilityRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	slot, err := h.availabilityUC.CreateAvailability(c.Request().Context(), actor, &usecase.AvailabilityInput{
		ServiceID: req.Service,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, presentAvailability(slot, nil))
}

// DeleteAvailability handles DELETE /availability/:id
func (h *AvailabilityHandler) DeleteAvailability(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.availabilityUC.DeleteAvailability(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
