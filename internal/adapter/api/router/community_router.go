package router

import (
	"github.com/labstack/echo/v4"

	"mados/internal/adapter/api/handler"
	"mados/internal/adapter/api/middleware"
)

func SetupCommunityRouter(v1 *echo.Group, sessionMiddleware *middleware.SessionMiddleware) {
	communityHandler := handler.GetCommunityHandler()

	posts := v1.Group("/community/posts")
	posts.GET("", communityHandler.ListPosts)
	posts.GET("/:id", communityHandler.GetPost)

	authenticated := posts.Group("", sessionMiddleware.Authenticate)
	authenticated.POST("", communityHandler.CreatePost)
	authenticated.POST("/:id/like", communityHandler.ToggleLike)
	authenticated.POST("/:id/comments", communityHandler.Comment)
	authenticated.POST("/:id/comments/:commentId/replies", communityHandler.Reply)
}
