// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"savor/internal/delivery/http/middleware"
	"savor/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	RatingHandler     *handler.RatingHandler
	RestaurantHandler *handler.RestaurantHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	ratingHandler     *handler.RatingHandler
	restaurantHandler *handler.RestaurantHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		ratingHandler:     params.RatingHandler,
		restaurantHandler: params.RestaurantHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.PATCH("/password", r.userHandler.UpdatePassword)
		userGroup.DELETE("/me", r.userHandler.Deactivate)
	}

	// Public catalog routes
	restaurantGroup := e.Group("/restaurants")
	{
		restaurantGroup.GET("", r.restaurantHandler.List)
		restaurantGroup.GET("/:id", r.restaurantHandler.Details)
		restaurantGroup.GET("/:id/menu", r.restaurantHandler.Menu)
		restaurantGroup.GET("/:id/ratings", r.ratingHandler.List)
	}

	// Rating submission requires authentication
	restaurantGroup.POST("/:id/ratings", r.ratingHandler.Submit, r.authMiddleware.Authenticate)
}
