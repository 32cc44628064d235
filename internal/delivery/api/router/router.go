// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mescontacts/internal/delivery/api/middleware"
	"mescontacts/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PostHandler         *handler.PostHandler
	PaymentHandler      *handler.PaymentHandler
	HistoryHandler      *handler.HistoryHandler
	UserHandler         *handler.UserHandler
	OrganizationHandler *handler.OrganizationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	postHandler         *handler.PostHandler
	paymentHandler      *handler.PaymentHandler
	historyHandler      *handler.HistoryHandler
	userHandler         *handler.UserHandler
	organizationHandler *handler.OrganizationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		postHandler:         params.PostHandler,
		paymentHandler:      params.PaymentHandler,
		historyHandler:      params.HistoryHandler,
		userHandler:         params.UserHandler,
		organizationHandler: params.OrganizationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Every /api/v1 route resolves the caller; admin and ownership checks live in the use cases.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Identify)

	postsGroup := apiV1.Group("/posts")
	{
		postsGroup.POST("", r.postHandler.Create)
		postsGroup.GET("/mine", r.postHandler.Mine)
		postsGroup.GET("/search", r.postHandler.Search)
		postsGroup.GET("/:id", r.postHandler.Get)
		postsGroup.PUT("/:id", r.postHandler.Update)
		postsGroup.DELETE("/:id", r.postHandler.Delete)
		postsGroup.PATCH("/:id/status", r.postHandler.ChangeStatus)
		postsGroup.POST("/:id/disable", r.postHandler.Disable)
		postsGroup.GET("/:id/qr", r.postHandler.QRCode)
		postsGroup.GET("/:id/history", r.historyHandler.ListByPost)
		postsGroup.GET("/:id/payments", r.paymentHandler.ListByPost)
	}

	paymentsGroup := apiV1.Group("/payments")
	{
		paymentsGroup.POST("", r.paymentHandler.Record)
		paymentsGroup.POST("/pending", r.paymentHandler.RecordPending)
		paymentsGroup.POST("/renew", r.paymentHandler.Renew)
		paymentsGroup.POST("/export", r.paymentHandler.Export)
		paymentsGroup.GET("", r.paymentHandler.List)
		paymentsGroup.GET("/stats", r.paymentHandler.Stats)
		paymentsGroup.POST("/:id/confirm", r.paymentHandler.Confirm)
		paymentsGroup.POST("/:id/refund", r.paymentHandler.Refund)
	}

	apiV1.GET("/history/recent", r.historyHandler.Recent)

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.POST("/sync", r.userHandler.Sync)
		usersGroup.GET("/me", r.userHandler.Me)
		usersGroup.GET("/session", r.userHandler.Session)
		usersGroup.PUT("/:id/role", r.userHandler.SetRole)
	}

	organizationsGroup := apiV1.Group("/organizations")
	{
		organizationsGroup.POST("", r.organizationHandler.Create)
		organizationsGroup.GET("", r.organizationHandler.List)
		organizationsGroup.GET("/:id", r.organizationHandler.Get)
		organizationsGroup.GET("/:id/members", r.organizationHandler.ListMembers)
		organizationsGroup.POST("/:id/members", r.organizationHandler.AddMember)
		organizationsGroup.PUT("/:id/members/:userId", r.organizationHandler.UpdateMemberRole)
		organizationsGroup.DELETE("/:id/members/:userId", r.organizationHandler.RemoveMember)
	}
}
