// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler      *handler.SessionHandler
	RegistrationHandler *handler.RegistrationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler      *handler.SessionHandler
	registrationHandler *handler.RegistrationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:      params.SessionHandler,
		registrationHandler: params.RegistrationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Token exchange: credentials on POST, refresh cookie on GET
	e.POST("/token", r.sessionHandler.Login)
	e.GET("/token", r.sessionHandler.Refresh)

	e.GET("/registration", r.registrationHandler.Check)
	e.POST("/registration", r.registrationHandler.Register)

	// Logout only decodes the bearer token, so repeating it with a revoked token still succeeds
	e.POST("/logout", r.sessionHandler.Logout)

	e.GET("/auth", r.sessionHandler.Me, r.authMiddleware.Authenticate)
	e.PUT("/profile", r.sessionHandler.UpdateProfile, r.authMiddleware.Authenticate)
}
