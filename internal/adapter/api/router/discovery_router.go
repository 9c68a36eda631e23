package router

import (
	"github.com/labstack/echo/v4"

	"mados/internal/adapter/api/handler"
	"mados/internal/adapter/api/middleware"
)

func SetupDiscoveryRouter(v1 *echo.Group, sessionMiddleware *middleware.SessionMiddleware) {
	discoveryHandler := handler.GetDiscoveryHandler()

	discovery := v1.Group("/discovery", sessionMiddleware.Optional)
	discovery.GET("/nearby", discoveryHandler.NearbyStores)
	discovery.GET("/popular", discoveryHandler.PopularNearby)
	discovery.GET("/map", discoveryHandler.MapPoints)
	discovery.GET("/search", discoveryHandler.SearchItems)
	discovery.POST("/search/image", discoveryHandler.SearchByImage, sessionMiddleware.Authenticate)
}
