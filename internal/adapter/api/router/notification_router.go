package router

import (
	"github.com/labstack/echo/v4"

	"mados/internal/adapter/api/handler"
	"mados/internal/adapter/api/middleware"
)

func SetupNotificationRouter(v1 *echo.Group, sessionMiddleware *middleware.SessionMiddleware) {
	notificationHandler := handler.GetNotificationHandler()

	notifications := v1.Group("/notifications", sessionMiddleware.Authenticate)
	notifications.GET("", notificationHandler.List)
	notifications.GET("/unread-count", notificationHandler.UnreadCount)
	notifications.POST("/read", notificationHandler.MarkAllRead)
}
