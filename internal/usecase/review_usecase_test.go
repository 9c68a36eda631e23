package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mados/pkg/errors"
)

func TestReviewStoreRequiresProximity(t *testing.T) {
	state := newState(t)
	uc := NewReviewUseCase(state, fixedPositions{"user-2": kopiSenja, "user-3": farAway}, nil, 20)
	ctx := context.Background()

	_, err := uc.ReviewStore(ctx, "user-3", "store-1", ReviewInput{Rating: 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	assert.Contains(t, err.Error(), "radius 20m dari Kopi Senja")

	review, err := uc.ReviewStore(ctx, "user-2", "store-1", ReviewInput{Rating: 4, Comment: " Enak "})
	require.NoError(t, err)
	assert.Equal(t, "Citra Lestari", review.UserName)
	assert.Equal(t, "Enak", review.Comment)
	assert.Equal(t, testNow, review.Timestamp)

	store, _ := state.Store("store-1")
	require.Len(t, store.Reviews, 1)

	_, err = uc.ReviewStore(ctx, "user-2", "store-1", ReviewInput{Rating: 3})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestReviewExplicitCoordinatesWin(t *testing.T) {
	uc := NewReviewUseCase(newState(t), fixedPositions{"user-3": farAway}, nil, 20)

	_, err := uc.ReviewPublicService(context.Background(), "user-3", "ps-1", ReviewInput{Rating: 5, Coordinates: &kopiSenja})
	assert.NoError(t, err)
}

func TestReviewItemHasNoProximityRule(t *testing.T) {
	state := newState(t)
	uc := NewReviewUseCase(state, nil, nil, 20)

	_, err := uc.ReviewItem(context.Background(), "user-3", "store-1", "item-1", ReviewInput{Rating: 5})
	require.NoError(t, err)

	item, _ := state.Item("store-1", "item-1")
	assert.Len(t, item.Reviews, 1)
}

func TestReviewRatingBounds(t *testing.T) {
	uc := NewReviewUseCase(newState(t), nil, nil, 20)

	for _, rating := range []int{0, 6, -1} {
		_, err := uc.ReviewItem(context.Background(), "user-2", "store-1", "item-1", ReviewInput{Rating: rating})
		assert.True(t, errors.Is(err, "VALIDATION_ERROR"), "rating %d", rating)
	}
}

func TestReviewRateLimited(t *testing.T) {
	uc := NewReviewUseCase(newState(t), nil, denyLimiter{}, 20)

	_, err := uc.ReviewItem(context.Background(), "user-2", "store-1", "item-1", ReviewInput{Rating: 5})
	assert.True(t, errors.Is(err, "TOO_MANY_REQUESTS"))
}

func TestReviewUnknownTargets(t *testing.T) {
	uc := NewReviewUseCase(newState(t), nil, nil, 20)
	ctx := context.Background()

	_, err := uc.ReviewStore(ctx, "user-2", "store-404", ReviewInput{Rating: 5})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	_, err = uc.ReviewItem(ctx, "user-2", "store-1", "item-404", ReviewInput{Rating: 5})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	_, err = uc.ReviewPublicService(ctx, "user-2", "ps-404", ReviewInput{Rating: 5})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	_, err = uc.ReviewPublicService(ctx, "user-2", "ps-1", ReviewInput{Rating: 5})
	assert.Contains(t, err.Error(), "lokasi")
}

func TestConcurrentDuplicateReviewsStoreOne(t *testing.T) {
	state := newState(t)
	uc := NewReviewUseCase(state, nil, nil, 20)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.ReviewItem(context.Background(), "user-2", "store-1", "item-1", ReviewInput{Rating: 5})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, "CONFLICT"):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, 7, conflicts)
	item, _ := state.Item("store-1", "item-1")
	assert.Len(t, item.Reviews, 1)
}
