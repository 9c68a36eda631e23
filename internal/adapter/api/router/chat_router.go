package router

import (
	"github.com/labstack/echo/v4"

	"mados/internal/adapter/api/handler"
	"mados/internal/adapter/api/middleware"
)

func SetupChatRouter(v1 *echo.Group, sessionMiddleware *middleware.SessionMiddleware) {
	chatHandler := handler.GetChatHandler()

	chats := v1.Group("/chats", sessionMiddleware.Authenticate)
	chats.GET("", chatHandler.ListChats)
	chats.GET("/:partnerId", chatHandler.OpenChat)
	chats.POST("/:partnerId/messages", chatHandler.SendMessage)
	chats.POST("/:partnerId/read", chatHandler.MarkRead)
}
