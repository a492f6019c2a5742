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

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	Logger     *slog.Logger
}

// BusinessHandler serves storefront endpoints.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		logger:     params.Logger,
	}
}

// CreateBusinessRequest represents the request body for creating a business
type CreateBusinessRequest struct {
	Name         string        `json:"name" validate:"required,max=255"`
	Description  string        `json:"description"`
	Category     *uuid.UUID    `json:"category"`
	Location     *locationBody `json:"location"`
	Address      string        `json:"address"`
	ContactEmail string        `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string        `json:"contact_phone" validate:"max=20"`
}

// UpdateBusinessRequest is a partial update; omitted fields are unchanged.
type UpdateBusinessRequest struct {
	Name         *string       `json:"name" validate:"omitempty,min=1,max=255"`
	Description  *string       `json:"description"`
	Category     *uuid.UUID    `json:"category"`
	Location     *locationBody `json:"location"`
	Address      *string       `json:"address"`
	ContactEmail *string       `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string       `json:"contact_phone" validate:"omitempty,max=20"`
}

// CreateBusiness handles POST /businesses
func (h *BusinessHandler) CreateBusiness(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateBusinessRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	location, err := req.Location.point()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	business, err := h.businessUC.CreateBusiness(c.Request().Context(), actor, &usecase.BusinessInput{
		Name:         req.Name,
		Description:  req.Description,
		CategoryID:   req.Category,
		Location:     location,
		Address:      req.Address,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, presentBusiness(business, nil))
}

// GetBusiness handles GET /businesses/:id
func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	business, err := h.businessUC.GetBusiness(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentBusiness(business, nil))
}

// ListBusinesses handles GET /businesses. Without lat/lng the whole
// collection is listed.
func (h *BusinessHandler) ListBusinesses(c echo.Context) error {
	input := searchInput(c)
	category, err := optionalQueryID(c, "category")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	input.CategoryID = category

	page, err := h.businessUC.ListBusinesses(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return presentPage(c, page, presentBusiness)
}

// NearbyBusinesses handles GET /nearby-businesses. Without lat/lng the
// result is empty.
func (h *BusinessHandler) NearbyBusinesses(c echo.Context) error {
	page, err := h.businessUC.NearbyBusinesses(c.Request().Context(), searchInput(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return presentPage(c, page, presentBusiness)
}

// UpdateBusiness handles PATCH/PUT /businesses/:id
func (h *BusinessHandler) UpdateBusiness(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateBusinessRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	location, err := req.Location.point()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	business, err := h.businessUC.UpdateBusiness(c.Request().Context(), actor, id, &usecase.UpdateBusinessInput{
		Name:         req.Name,
		Description:  req.Description,
		CategoryID:   req.Category,
		Location:     location,
		Address:      req.Address,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentBusiness(business, nil))
}

// DeleteBusiness handles DELETE /businesses/:id
func (h *BusinessHandler) DeleteBusiness(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.businessUC.DeleteBusiness(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
