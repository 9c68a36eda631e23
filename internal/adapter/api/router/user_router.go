package router

import (
	"github.com/labstack/echo/v4"

	"mados/internal/adapter/api/handler"
	"mados/internal/adapter/api/middleware"
)

func SetupUserRouter(v1 *echo.Group, sessionMiddleware *middleware.SessionMiddleware) {
	userHandler := handler.GetUserHandler()

	me := v1.Group("/users/me", sessionMiddleware.Authenticate)
	me.GET("", userHandler.GetMyProfile)
	me.PUT("", userHandler.UpdateProfile)
	me.PUT("/interests", userHandler.UpdateInterests)

	// Public profile pages; the viewer is optional.
	users := v1.Group("/users", sessionMiddleware.Optional)
	users.GET("/:id", userHandler.GetProfile)
	users.GET("/:id/followers", userHandler.GetFollowers)
	users.GET("/:id/following", userHandler.GetFollowing)
	users.GET("/:id/posts", userHandler.GetPosts)
	users.POST("/:id/follow", userHandler.ToggleFollow, sessionMiddleware.Authenticate)
}
