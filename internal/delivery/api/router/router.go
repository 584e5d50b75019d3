// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"walletportal/internal/delivery/api/middleware"
	"walletportal/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	AuthHandler       *handler.AuthHandler
	WalletHandler     *handler.WalletHandler
	UsersHandler      *handler.UsersHandler
	SessionMiddleware *middleware.SessionMiddleware
	AuthMiddleware    *middleware.AuthMiddleware
	Registry          *prometheus.Registry `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	authHandler       *handler.AuthHandler
	walletHandler     *handler.WalletHandler
	usersHandler      *handler.UsersHandler
	sessionMiddleware *middleware.SessionMiddleware
	authMiddleware    *middleware.AuthMiddleware
	registry          *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		authHandler:       params.AuthHandler,
		walletHandler:     params.WalletHandler,
		usersHandler:      params.UsersHandler,
		sessionMiddleware: params.SessionMiddleware,
		authMiddleware:    params.AuthMiddleware,
		registry:          params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})))
	}

	// Every browser route runs inside a session.
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.sessionMiddleware.Process)

	sessionGroup := apiV1.Group("/session")
	{
		sessionGroup.POST("/start", r.sessionHandler.Start)
		sessionGroup.GET("", r.sessionHandler.Status)
		sessionGroup.PUT("/view", r.sessionHandler.SwitchView)
		sessionGroup.POST("/logout", r.sessionHandler.Logout)
	}

	authGroup := apiV1.Group("/auth")
	{
		authGroup.GET("", r.authHandler.State)
		authGroup.POST("/email", r.authHandler.SubmitEmail)
		authGroup.POST("/code", r.authHandler.SubmitCode)
		authGroup.POST("/back", r.authHandler.Back)
	}

	// The wallet viewer reports a missing token itself.
	walletGroup := apiV1.Group("/wallet")
	{
		walletGroup.GET("", r.walletHandler.GetWallet)
		walletGroup.GET("/qr", r.walletHandler.GetWalletQR)
	}

	usersGroup := apiV1.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	{
		usersGroup.GET("", r.usersHandler.List)
		usersGroup.GET("/state", r.usersHandler.State)
		usersGroup.POST("/refresh", r.usersHandler.Refresh)
		usersGroup.POST("/more", r.usersHandler.LoadMore)
		usersGroup.POST("/search", r.usersHandler.Search)
	}
}
