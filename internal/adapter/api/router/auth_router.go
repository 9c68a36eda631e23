package router

import (
	"github.com/labstack/echo/v4"

	"mados/internal/adapter/api/handler"
	"mados/internal/adapter/api/middleware"
)

func SetupAuthRouter(v1 *echo.Group, sessionMiddleware *middleware.SessionMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/signup", authHandler.SignUp)
	auth.GET("/me", authHandler.Me)
	auth.POST("/logout", authHandler.Logout, sessionMiddleware.Authenticate)
}
