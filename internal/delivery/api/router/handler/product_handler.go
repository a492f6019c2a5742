package handler

import (
	"log/slog"
	"net/http"

	"soko/internal/delivery/api/response"
	"soko/internal/domain/entity"
	"soko/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves product endpoints.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Business    uuid.UUID     `json:"business" validate:"required"`
	Name        string        `json:"name" validate:"required,max=255"`
	Description string        `json:"description"`
	Price       float64       `json:"price" validate:"gte=0"`
	Category    *uuid.UUID    `json:"category"`
	Condition   string        `json:"condition" validate:"omitempty,oneof=NEW USED REFURB"`
	Location    *locationBody `json:"location"`
	Stock       int           `json:"stock" validate:"gte=0"`
}

// UpdateProductRequest is a partial update; omitted fields are unchanged.
type UpdateProductRequest struct {
	Name        *string       `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string       `json:"description"`
	Price       *float64      `json:"price" validate:"omitempty,gte=0"`
	Category    *uuid.UUID    `json:"category"`
	Condition   *string       `json:"condition" validate:"omitempty,oneof=NEW USED REFURB"`
	Location    *locationBody `json:"location"`
	Stock       *int          `json:"stock" validate:"omitempty,gte=0"`
}

// CreateProduct handles POST /products. Tagging of the description runs in
// the background.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateProductRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	location, err := req.Location.point()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), actor, &usecase.ProductInput{
		BusinessID:  req.Business,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.Category,
		Condition:   entity.ProductCondition(req.Condition),
		Location:    location,
		Stock:       req.Stock,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, presentProduct(product, nil))
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentProduct(product, nil))
}

// ListProducts handles GET /products with optional business and category
// filters.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	input := searchInput(c)

	business, err := optionalQueryID(c, "business")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	category, err := optionalQueryID(c, "category")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	input.ParentID = business
	input.CategoryID = category

	page, err := h.productUC.ListProducts(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return presentPage(c, page, presentProduct)
}

// UpdateProduct handles PATCH/PUT /products/:id
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProductRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	location, err := req.Location.point()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.Category,
		Location:    location,
		Stock:       req.Stock,
	}
	if req.Condition != nil {
		condition := entity.ProductCondition(*req.Condition)
		input.Condition = &condition
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), actor, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentProduct(product, nil))
}

// DeleteProduct handles DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
