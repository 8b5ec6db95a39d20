// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"geoalert/internal/delivery/api/middleware"
	"geoalert/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PointEventHandler *handler.PointEventHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	pointEventHandler *handler.PointEventHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pointEventHandler: params.PointEventHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// API v1 routes are called by other services only
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	eventsGroup := apiV1.Group("/events")
	{
		eventsGroup.POST("/point-created", r.pointEventHandler.PointCreated)
	}
}
