package main

import (
	"context"
	"fmt"
	"time"

	"mados/internal/adapter/repository"
	"mados/internal/appstate"
	domainrepo "mados/internal/domain/repository"
	"mados/internal/domain/service"
	"mados/internal/infrastructure/firebase"
	"mados/internal/infrastructure/genai"
	"mados/pkg/config"
	"mados/pkg/logger"
)

// loadState builds the in-memory state from the configured seed source.
// The returned cleanup closes whatever client the source opened.
func loadState(ctx context.Context, cfg *config.Config) (*appstate.State, func(), error) {
	seedRepo, cleanup, err := seedRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	seed, err := seedRepo.Load(ctx)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("load seed: %w", err)
	}

	logger.Info("Seed loaded from %s: %d users, %d stores, %d public services",
		cfg.SeedSource, len(seed.Users), len(seed.Stores), len(seed.PublicServices))

	return appstate.New(seed), cleanup, nil
}

func seedRepository(ctx context.Context, cfg *config.Config) (domainrepo.SeedRepository, func(), error) {
	noop := func() {}

	switch cfg.SeedSource {
	case "file":
		return repository.NewFileSeedRepository(cfg.SeedFile, time.Now), noop, nil
	case "firestore":
		client, err := firebase.NewFirestoreClient(ctx, cfg.FirebaseProject, cfg.ServiceAccount)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewFirestoreSeedRepository(client), func() { _ = client.Close() }, nil
	default:
		return repository.NewEmbeddedSeedRepository(time.Now), noop, nil
	}
}

// imageAnalyzer is nil without an API key; image search then reports
// itself unavailable.
func imageAnalyzer(ctx context.Context, cfg *config.Config) (service.ImageAnalyzer, error) {
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set, image search is disabled")
		return nil, nil
	}
	analyzer, err := genai.NewImageAnalyzer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("initialize image analyzer: %w", err)
	}
	return analyzer, nil
}
