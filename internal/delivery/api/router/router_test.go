package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"soko/config"
	"soko/internal/delivery/api/middleware"
	"soko/internal/delivery/api/router/handler"
	"soko/internal/delivery/api/validator"
	"soko/internal/domain/entity"
	"soko/internal/domain/proximity"
	"soko/internal/domain/service"
	mockservice "soko/internal/mocks/service"
	mockusecase "soko/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerMocks struct {
	tokens     *mockservice.MockTokenService
	businesses *mockusecase.MockBusinessUsecase
}

func newTestEcho(t *testing.T) (*echo.Echo, routerMocks) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := routerMocks{
		tokens:     mockservice.NewMockTokenService(t),
		businesses: mockusecase.NewMockBusinessUsecase(t),
	}

	r := NewRouter(RouterParams{
		UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{UserUC: mockusecase.NewMockUserUsecase(t), Logger: logger}),
		BusinessHandler: handler.NewBusinessHandler(handler.BusinessHandlerParams{BusinessUC: m.businesses, Logger: logger}),
		ProductHandler:  handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: mockusecase.NewMockProductUsecase(t), Logger: logger}),
		ServiceHandler:  handler.NewServiceHandler(handler.ServiceHandlerParams{ServiceUC: mockusecase.NewMockServiceUsecase(t), Logger: logger}),
		AvailabilityHandler: handler.NewAvailabilityHandler(handler.AvailabilityHandlerParams{
			AvailabilityUC: mockusecase.NewMockAvailabilityUsecase(t),
			Logger:         logger,
		}),
		MarketplaceHandler: handler.NewMarketplaceHandler(handler.MarketplaceHandlerParams{
			CategoryUC:       mockusecase.NewMockCategoryUsecase(t),
			ServiceRequestUC: mockusecase.NewMockServiceRequestUsecase(t),
			ReviewUC:         mockusecase.NewMockReviewUsecase(t),
			Logger:           logger,
		}),
		EnrichmentHandler: handler.NewEnrichmentHandler(handler.EnrichmentHandlerParams{
			EnrichmentUC: mockusecase.NewMockEnrichmentUsecase(t),
			TagJobUC:     mockusecase.NewMockTagJobUsecase(t),
			Logger:       logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(m.tokens),
		Config: &config.Config{
			Enrichment: &config.EnrichmentConfig{RatePerMinute: 10},
			RateLimit:  &config.RateLimitConfig{AnonymousPerMinute: 60},
		},
	})

	e := echo.New()
	e.Validator = validator.New()
	r.RegisterRoutes(e)

	return e, m
}

func serve(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRoutes_PublicReads(t *testing.T) {
	e, m := newTestEcho(t)

	m.businesses.EXPECT().NearbyBusinesses(mock.Anything, mock.Anything).Return(&proximity.Page[*entity.Business]{
		Items:    []proximity.Ranked[*entity.Business]{},
		Page:     1,
		PageSize: 20,
	}, nil)

	rec := serve(e, http.MethodGet, "/api/v1/nearby-businesses?lat=-1.29&lng=36.82", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_WritesRequireAuthentication(t *testing.T) {
	e, _ := newTestEcho(t)

	for _, target := range []string{"/api/v1/businesses", "/api/v1/reviews", "/api/v1/ai/tags"} {
		rec := serve(e, http.MethodPost, target, "", `{}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestRoutes_AdminOnly(t *testing.T) {
	e, m := newTestEcho(t)

	m.tokens.EXPECT().ValidateAccessToken("customer-token").Return(&service.Claims{
		UserID: uuid.Must(uuid.NewV7()),
		Roles:  []string{string(entity.RoleCustomer)},
		Type:   "access",
	}, nil)

	rec := serve(e, http.MethodPost, "/api/v1/categories", "customer-token", `{"name":"Tools"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
