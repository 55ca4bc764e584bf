// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pulse/internal/delivery/http/middleware"
	"pulse/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	ConnectionHandler *handler.ConnectionHandler
	MailboxHandler    *handler.MailboxHandler
	CalendarHandler   *handler.CalendarHandler
	BriefHandler      *handler.BriefHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	connectionHandler *handler.ConnectionHandler
	mailboxHandler    *handler.MailboxHandler
	calendarHandler   *handler.CalendarHandler
	briefHandler      *handler.BriefHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		connectionHandler: params.ConnectionHandler,
		mailboxHandler:    params.MailboxHandler,
		calendarHandler:   params.CalendarHandler,
		briefHandler:      params.BriefHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Provider callbacks arrive from the browser without our Authorization
	// header, so they stay public; the state token does the correlating.
	e.GET("/oauth/:provider/callback", r.connectionHandler.Callback)

	// Routes that require authentication
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/auth/:provider", r.connectionHandler.Initiate)
		apiGroup.POST("/auth/disconnect/:service", r.connectionHandler.Disconnect)
		apiGroup.GET("/connections", r.connectionHandler.List)

		apiGroup.POST("/mail/sync", r.mailboxHandler.Sync)
		apiGroup.GET("/mail", r.mailboxHandler.List)
		apiGroup.POST("/mail/:id/summary", r.mailboxHandler.Summarize)
		apiGroup.POST("/mail/:id/replies", r.mailboxHandler.SuggestReplies)

		apiGroup.POST("/calendar/sync", r.calendarHandler.Sync)
		apiGroup.GET("/calendar/events", r.calendarHandler.ListEvents)
		apiGroup.GET("/calendar/free", r.calendarHandler.FreeBlocks)

		apiGroup.GET("/brief", r.briefHandler.Get)
		apiGroup.POST("/brief/generate", r.briefHandler.Generate)
	}
}
