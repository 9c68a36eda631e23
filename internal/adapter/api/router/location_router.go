package router

import (
	"github.com/labstack/echo/v4"

	"mados/internal/adapter/api/handler"
	"mados/internal/adapter/api/middleware"
)

func SetupLocationRouter(v1 *echo.Group, sessionMiddleware *middleware.SessionMiddleware) {
	locationHandler := handler.GetLocationHandler()

	location := v1.Group("/location", sessionMiddleware.Authenticate)
	location.GET("", locationHandler.GetLocation)
	location.PUT("", locationHandler.UpdateLocation)
	location.POST("/error", locationHandler.ReportError)
}
