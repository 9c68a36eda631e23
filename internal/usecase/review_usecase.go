package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"mados/internal/appstate"
	"mados/internal/domain/entity"
	"mados/internal/geo"
	"mados/internal/infrastructure/ratelimit"
	"mados/pkg/errors"
)

type ReviewUseCase struct {
	state           *appstate.State
	positions       PositionSource
	limiter         RateLimiter
	proximityMeters float64
}

func NewReviewUseCase(state *appstate.State, positions PositionSource, limiter RateLimiter, proximityMeters float64) *ReviewUseCase {
	return &ReviewUseCase{
		state:           state,
		positions:       positions,
		limiter:         limiter,
		proximityMeters: proximityMeters,
	}
}

type ReviewInput struct {
	Rating      int
	Comment     string
	Coordinates *entity.Coordinates
}

// ReviewStore requires the reviewer to stand near the store.
func (uc *ReviewUseCase) ReviewStore(ctx context.Context, userID, storeID string, input ReviewInput) (*entity.Review, error) {
	store, ok := uc.state.Store(storeID)
	if !ok {
		return nil, errors.NotFound("Store", nil)
	}

	review, err := uc.prepare(userID, store.Name, store.Reviews, input)
	if err != nil {
		return nil, err
	}
	if err := uc.checkProximity(userID, store.Name, store.Coordinates, input.Coordinates); err != nil {
		return nil, err
	}

	if !uc.state.AddReviewToStore(storeID, review) {
		return nil, alreadyReviewed(store.Name)
	}
	return &review, nil
}

// ReviewItem has no location requirement.
func (uc *ReviewUseCase) ReviewItem(ctx context.Context, userID, storeID, itemID string, input ReviewInput) (*entity.Review, error) {
	item, ok := uc.state.Item(storeID, itemID)
	if !ok {
		return nil, errors.NotFound("Item", nil)
	}

	review, err := uc.prepare(userID, item.Name, item.Reviews, input)
	if err != nil {
		return nil, err
	}

	if !uc.state.AddReviewToItem(storeID, itemID, review) {
		return nil, alreadyReviewed(item.Name)
	}
	return &review, nil
}

func (uc *ReviewUseCase) ReviewPublicService(ctx context.Context, userID, serviceID string, input ReviewInput) (*entity.Review, error) {
	ps, ok := uc.state.PublicService(serviceID)
	if !ok {
		return nil, errors.NotFound("Public service", nil)
	}

	review, err := uc.prepare(userID, ps.Name, ps.Reviews, input)
	if err != nil {
		return nil, err
	}
	if err := uc.checkProximity(userID, ps.Name, ps.Coordinates, input.Coordinates); err != nil {
		return nil, err
	}

	if !uc.state.AddReviewToPublicService(serviceID, review) {
		return nil, alreadyReviewed(ps.Name)
	}
	return &review, nil
}

func (uc *ReviewUseCase) prepare(userID, targetName string, existing []entity.Review, input ReviewInput) (entity.Review, error) {
	_, me, err := currentSession(uc.state, userID)
	if err != nil {
		return entity.Review{}, err
	}
	if input.Rating < 1 || input.Rating > 5 {
		return entity.Review{}, errors.Validation("Rating harus antara 1 dan 5.")
	}
	if entity.HasReviewFrom(existing, me.ID) {
		return entity.Review{}, alreadyReviewed(targetName)
	}
	if err := allow(uc.limiter, me.ID, ratelimit.ActionReview); err != nil {
		return entity.Review{}, err
	}

	return entity.Review{
		ID:        "rev-" + uuid.NewString(),
		UserID:    me.ID,
		UserName:  me.Name,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		Timestamp: uc.state.Now(),
	}, nil
}

func (uc *ReviewUseCase) checkProximity(userID, targetName string, target entity.Coordinates, explicit *entity.Coordinates) error {
	here, ok := locate(uc.positions, userID, explicit)
	if !ok {
		return errors.Validation(msgLocationMissing)
	}
	if d := geo.Distance(here, target); d > uc.proximityMeters {
		return errors.Validation(fmt.Sprintf(
			"Anda harus berada dalam radius %.0fm dari %s untuk memberi ulasan. Jarak Anda: %.0fm.",
			uc.proximityMeters, targetName, d))
	}
	return nil
}

func alreadyReviewed(targetName string) error {
	return errors.Conflict(fmt.Sprintf("Anda sudah memberikan ulasan untuk %s.", targetName))
}
