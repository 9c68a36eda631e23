package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"mados/internal/adapter/api"
	"mados/internal/adapter/api/handler"
	apimiddleware "mados/internal/adapter/api/middleware"
	"mados/internal/adapter/api/router"
	"mados/internal/domain/entity"
	"mados/internal/infrastructure/ratelimit"
	"mados/internal/infrastructure/token"
	"mados/internal/infrastructure/websocket"
	"mados/internal/usecase"
	"mados/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

// liveActions receives what clients send over the websocket.
type liveActions struct {
	chat      *usecase.ChatUseCase
	locations *usecase.LocationUseCase
}

func (a liveActions) MarkRead(userID, partnerID string) error {
	return a.chat.MarkRead(userID, partnerID)
}

func (a liveActions) UpdateLocation(userID string, coords entity.Coordinates) {
	a.locations.UpdateLocation(userID, coords)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state, closeSeed, err := loadState(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSeed()

	analyzer, err := imageAnalyzer(ctx, cfg)
	if err != nil {
		return err
	}

	tokens := token.NewJWTIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpiry)*time.Second)

	limiter := ratelimit.NewRateLimiter(cfg.MessagesPerMinute)
	limiter.SetPolicy(ratelimit.ActionRequest, ratelimit.PerMinute(cfg.RequestsPerMinute))
	limiter.StartCleanupRoutine(ctx, 10*time.Minute)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	locations := usecase.NewLocationUseCase(ctx)
	defer locations.Close()

	chatUseCase := usecase.NewChatUseCase(state, limiter, wsManager)
	wsManager.SetHandler(liveActions{chat: chatUseCase, locations: locations})

	handler.Setup(handler.UseCases{
		Auth:         usecase.NewAuthUseCase(state, tokens),
		User:         usecase.NewUserUseCase(state, wsManager),
		Onboarding:   usecase.NewOnboardingUseCase(state, locations),
		Catalog:      usecase.NewCatalogUseCase(state),
		Review:       usecase.NewReviewUseCase(state, locations, limiter, cfg.ReviewProximityMeters),
		Community:    usecase.NewCommunityUseCase(state, limiter, wsManager),
		Chat:         chatUseCase,
		Notification: usecase.NewNotificationUseCase(state),
		Discovery:    usecase.NewDiscoveryUseCase(state, analyzer, limiter),
		Location:     locations,
	})

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.IsDevelopment()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	sessionMiddleware := apimiddleware.NewSessionMiddleware(tokens)
	router.Setup(e, sessionMiddleware, limiter)
	router.SetupWebSocketRouter(e, handler.NewWebSocketHandler(wsManager), sessionMiddleware)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
