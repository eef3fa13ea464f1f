// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nearshop/internal/delivery/http/middleware"
	"nearshop/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ShopHandler    *handler.ShopHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	shopHandler    *handler.ShopHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		shopHandler:    params.ShopHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// The nearby listing is public; subscription state is per-account and
	// requires authentication.
	e.GET("/shops", r.shopHandler.ListNearby)

	shopGroup := e.Group("/shops", r.authMiddleware.Authenticate)
	{
		shopGroup.GET("/:id", r.shopHandler.GetDetail)
		shopGroup.POST("/:id/subscribe", r.shopHandler.Subscribe)
		shopGroup.POST("/:id/unsubscribe", r.shopHandler.Unsubscribe)
	}
}
