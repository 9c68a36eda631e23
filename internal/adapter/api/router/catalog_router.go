package router

import (
	"github.com/labstack/echo/v4"

	"mados/internal/adapter/api/handler"
	"mados/internal/adapter/api/middleware"
)

// SetupCatalogRouter mounts stores, the seller dashboard and reviews.
func SetupCatalogRouter(v1 *echo.Group, sessionMiddleware *middleware.SessionMiddleware) {
	catalogHandler := handler.GetCatalogHandler()
	reviewHandler := handler.GetReviewHandler()

	// Seller dashboard
	mine := v1.Group("/stores/me", sessionMiddleware.Authenticate)
	mine.GET("", catalogHandler.GetMyStore)
	mine.POST("/items", catalogHandler.AddItem)
	mine.PUT("/items/:itemId", catalogHandler.UpdateItem)
	mine.DELETE("/items/:itemId", catalogHandler.DeleteItem)

	stores := v1.Group("/stores")
	stores.GET("", catalogHandler.ListStores)
	stores.GET("/:id", catalogHandler.GetStore)
	stores.GET("/:id/items/:itemId", catalogHandler.GetItem)
	stores.POST("/:id/reviews", reviewHandler.ReviewStore, sessionMiddleware.Authenticate)
	stores.POST("/:id/items/:itemId/reviews", reviewHandler.ReviewItem, sessionMiddleware.Authenticate)

	v1.POST("/public-services/:id/reviews", reviewHandler.ReviewPublicService, sessionMiddleware.Authenticate)
}
