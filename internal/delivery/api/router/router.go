// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"soko/config"
	"soko/internal/delivery/api/middleware"
	"soko/internal/delivery/api/router/handler"
	"soko/internal/domain/entity"
	"soko/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	BusinessHandler     *handler.BusinessHandler
	ProductHandler      *handler.ProductHandler
	ServiceHandler      *handler.ServiceHandler
	AvailabilityHandler *handler.AvailabilityHandler
	MarketplaceHandler  *handler.MarketplaceHandler
	EnrichmentHandler   *handler.EnrichmentHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	businessHandler     *handler.BusinessHandler
	productHandler      *handler.ProductHandler
	serviceHandler      *handler.ServiceHandler
	availabilityHandler *handler.AvailabilityHandler
	marketplaceHandler  *handler.MarketplaceHandler
	enrichmentHandler   *handler.EnrichmentHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		businessHandler:     params.BusinessHandler,
		productHandler:      params.ProductHandler,
		serviceHandler:      params.ServiceHandler,
		availabilityHandler: params.AvailabilityHandler,
		marketplaceHandler:  params.MarketplaceHandler,
		enrichmentHandler:   params.EnrichmentHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads of public listings are anonymous; every write is authenticated.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", metrics.Handler())

	auth := r.authMiddleware.Authenticate
	admin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	apiV1 := e.Group("/api/v1")

	// Auth routes
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
	}

	meGroup := apiV1.Group("/me", auth)
	{
		meGroup.GET("", r.userHandler.GetMe)
		meGroup.PUT("/avatar", r.userHandler.UpdateAvatar)
	}

	businessGroup := apiV1.Group("/businesses")
	{
		businessGroup.GET("", r.businessHandler.ListBusinesses)
		businessGroup.GET("/:id", r.businessHandler.GetBusiness)
		businessGroup.POST("", r.businessHandler.CreateBusiness, auth)
		businessGroup.PUT("/:id", r.businessHandler.UpdateBusiness, auth)
		businessGroup.PATCH("/:id", r.businessHandler.UpdateBusiness, auth)
		businessGroup.DELETE("/:id", r.businessHandler.DeleteBusiness, auth)
	}
	apiV1.GET("/nearby-businesses", r.businessHandler.NearbyBusinesses)

	productGroup := apiV1.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.POST("", r.productHandler.CreateProduct, auth)
		productGroup.PUT("/:id", r.productHandler.UpdateProduct, auth)
		productGroup.PATCH("/:id", r.productHandler.UpdateProduct, auth)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct, auth)
	}

	serviceGroup := apiV1.Group("/services")
	{
		serviceGroup.GET("", r.serviceHandler.ListServices)
		serviceGroup.GET("/mine", r.serviceHandler.ListMyServices, auth)
		serviceGroup.GET("/:id", r.serviceHandler.GetService)
		serviceGroup.POST("", r.serviceHandler.CreateService, auth)
		serviceGroup.PUT("/:id", r.serviceHandler.UpdateService, auth)
		serviceGroup.PATCH("/:id", r.serviceHandler.UpdateService, auth)
		serviceGroup.DELETE("/:id", r.serviceHandler.DeleteService, auth)
		serviceGroup.POST("/:id/verify", r.serviceHandler.VerifyService, auth, admin)
	}

	availabilityGroup := apiV1.Group("/availability", auth)
	{
		availabilityGroup.GET("", r.availabilityHandler.ListAvailability)
		availabilityGroup.POST("", r.availabilityHandler.CreateAvailability)
		availabilityGroup.DELETE("/:id", r.availabilityHandler.DeleteAvailability)
	}

	requestGroup := apiV1.Group("/service-requests", auth)
	{
		requestGroup.GET("", r.marketplaceHandler.ListServiceRequests)
		requestGroup.POST("", r.marketplaceHandler.CreateServiceRequest)
		requestGroup.PATCH("/:id/status", r.marketplaceHandler.UpdateServiceRequestStatus)
	}

	reviewGroup := apiV1.Group("/reviews")
	{
		reviewGroup.GET("", r.marketplaceHandler.ListReviews)
		reviewGroup.POST("", r.marketplaceHandler.CreateReview, auth)
	}

	categoryGroup := apiV1.Group("/categories")
	{
		anonymousLimit := middleware.NewRateLimiter(r.config.RateLimit.AnonymousPerMinute)
		categoryGroup.GET("", r.marketplaceHandler.ListCategories, anonymousLimit)
		categoryGroup.POST("", r.marketplaceHandler.CreateCategory, auth, admin)
	}

	// AI routes are throttled per user
	aiGroup := apiV1.Group("/ai", auth, middleware.NewRateLimiter(r.config.Enrichment.RatePerMinute))
	{
		aiGroup.POST("/tags", r.enrichmentHandler.SubmitTags)
		aiGroup.GET("/tags/:taskId", r.enrichmentHandler.GetTags)
		aiGroup.POST("/enhance-description", r.enrichmentHandler.EnhanceDescription)
		aiGroup.POST("/service-suggestions", r.enrichmentHandler.SuggestServices)
		aiGroup.POST("/match-services", r.enrichmentHandler.MatchServices)
	}
}
