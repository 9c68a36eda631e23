package handler

import (
	"github.com/labstack/echo/v4"

	"mados/internal/adapter/api/middleware"
	"mados/internal/usecase"
	"mados/pkg/errors"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	onboardingHandler   *OnboardingHandler
	catalogHandler      *CatalogHandler
	reviewHandler       *ReviewHandler
	communityHandler    *CommunityHandler
	chatHandler         *ChatHandler
	notificationHandler *NotificationHandler
	discoveryHandler    *DiscoveryHandler
	locationHandler     *LocationHandler
)

// UseCases groups what the HTTP handlers call into.
type UseCases struct {
	Auth         *usecase.AuthUseCase
	User         *usecase.UserUseCase
	Onboarding   *usecase.OnboardingUseCase
	Catalog      *usecase.CatalogUseCase
	Review       *usecase.ReviewUseCase
	Community    *usecase.CommunityUseCase
	Chat         *usecase.ChatUseCase
	Notification *usecase.NotificationUseCase
	Discovery    *usecase.DiscoveryUseCase
	Location     *usecase.LocationUseCase
}

func Setup(uc UseCases) {
	authHandler = NewAuthHandler(uc.Auth)
	userHandler = NewUserHandler(uc.User, uc.Community)
	onboardingHandler = NewOnboardingHandler(uc.Onboarding)
	catalogHandler = NewCatalogHandler(uc.Catalog)
	reviewHandler = NewReviewHandler(uc.Review)
	communityHandler = NewCommunityHandler(uc.Community)
	chatHandler = NewChatHandler(uc.Chat)
	notificationHandler = NewNotificationHandler(uc.Notification)
	var positions usecase.PositionSource
	if uc.Location != nil {
		positions = uc.Location
	}
	discoveryHandler = NewDiscoveryHandler(uc.Discovery, positions)
	locationHandler = NewLocationHandler(uc.Location)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetOnboardingHandler() *OnboardingHandler {
	return onboardingHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetCommunityHandler() *CommunityHandler {
	return communityHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetDiscoveryHandler() *DiscoveryHandler {
	return discoveryHandler
}

func GetLocationHandler() *LocationHandler {
	return locationHandler
}

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.BadRequest("Invalid request body", err)
	}
	return c.Validate(req)
}

func currentUserID(c echo.Context) string {
	return middleware.UserID(c)
}
