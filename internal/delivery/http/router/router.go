// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bizradar/internal/delivery/http/middleware"
	"bizradar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MonitorHandler      *handler.MonitorHandler
	SettingsHandler     *handler.SettingsHandler
	NotificationHandler *handler.NotificationHandler
	BusinessHandler     *handler.BusinessHandler
	ScanHandler         *handler.ScanHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	monitorHandler      *handler.MonitorHandler
	settingsHandler     *handler.SettingsHandler
	notificationHandler *handler.NotificationHandler
	businessHandler     *handler.BusinessHandler
	scanHandler         *handler.ScanHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		monitorHandler:      params.MonitorHandler,
		settingsHandler:     params.SettingsHandler,
		notificationHandler: params.NotificationHandler,
		businessHandler:     params.BusinessHandler,
		scanHandler:         params.ScanHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	monitorGroup := api.Group("/monitor")
	{
		monitorGroup.GET("/status", r.monitorHandler.Status)
		monitorGroup.POST("/start", r.monitorHandler.Start)
		monitorGroup.POST("/stop", r.monitorHandler.Stop)
		monitorGroup.POST("/restart", r.monitorHandler.Restart)
		monitorGroup.POST("/scan", r.monitorHandler.ScanNow)
	}

	settingsGroup := api.Group("/settings")
	{
		settingsGroup.GET("", r.settingsHandler.Get)
		settingsGroup.PUT("", r.settingsHandler.Update)
	}

	notificationGroup := api.Group("/notifications")
	{
		notificationGroup.GET("", r.notificationHandler.List)
		notificationGroup.GET("/summary", r.notificationHandler.Summary)
		notificationGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
		notificationGroup.POST("/:id/read", r.notificationHandler.MarkRead)
		notificationGroup.POST("/:id/dismiss", r.notificationHandler.Dismiss)
	}

	businessGroup := api.Group("/businesses")
	{
		businessGroup.GET("", r.businessHandler.List)
		businessGroup.GET("/trending", r.businessHandler.Trending)
		businessGroup.GET("/summary", r.businessHandler.Summary)
	}

	api.GET("/scans", r.scanHandler.History)
}
