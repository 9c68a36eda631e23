package router

import (
	"github.com/labstack/echo/v4"

	"mados/internal/adapter/api/handler"
	"mados/internal/adapter/api/middleware"
)

func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler, sessionMiddleware *middleware.SessionMiddleware) {
	e.GET("/v1/ws", wsHandler.HandleWebSocket, sessionMiddleware.Authenticate)
}
