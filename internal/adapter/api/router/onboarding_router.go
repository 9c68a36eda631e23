package router

import (
	"github.com/labstack/echo/v4"

	"mados/internal/adapter/api/handler"
	"mados/internal/adapter/api/middleware"
)

func SetupOnboardingRouter(v1 *echo.Group, sessionMiddleware *middleware.SessionMiddleware) {
	onboardingHandler := handler.GetOnboardingHandler()

	v1.GET("/options", onboardingHandler.GetOptions)

	onboarding := v1.Group("/onboarding", sessionMiddleware.Authenticate)
	onboarding.GET("", onboardingHandler.GetStatus)
	onboarding.POST("/seller", onboardingHandler.SubmitSeller)
	onboarding.POST("/seller/approve", onboardingHandler.ApproveSeller)
	onboarding.POST("/public-service", onboardingHandler.SubmitPublicService)
	onboarding.POST("/public-service/approve", onboardingHandler.ApprovePublicService)
}
