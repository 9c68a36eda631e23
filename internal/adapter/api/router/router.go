package router

import (
	"github.com/labstack/echo/v4"

	"mados/internal/adapter/api/middleware"
)

// Setup mounts every route. handler.Setup must have run first.
func Setup(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware, limiter middleware.Limiter) {
	v1 := e.Group("/v1", sessionMiddleware.Optional)
	if limiter != nil {
		v1.Use(middleware.RateLimitMiddleware(limiter))
	}

	SetupHealthRouter(e)
	SetupAuthRouter(v1, sessionMiddleware)
	SetupUserRouter(v1, sessionMiddleware)
	SetupOnboardingRouter(v1, sessionMiddleware)
	SetupCatalogRouter(v1, sessionMiddleware)
	SetupCommunityRouter(v1, sessionMiddleware)
	SetupChatRouter(v1, sessionMiddleware)
	SetupNotificationRouter(v1, sessionMiddleware)
	SetupDiscoveryRouter(v1, sessionMiddleware)
	SetupLocationRouter(v1, sessionMiddleware)
}
