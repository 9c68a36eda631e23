package usecase

import (
	"context"
	"sync"

	"mados/internal/domain/entity"
	"mados/internal/geo"
)

type userTracker struct {
	provider *geo.ManualProvider
	tracker  *geo.Tracker
}

// LocationUseCase keeps one position tracker per user, fed by the positions
// clients report.
type LocationUseCase struct {
	ctx context.Context

	mu       sync.Mutex
	trackers map[string]*userTracker
}

func NewLocationUseCase(ctx context.Context) *LocationUseCase {
	return &LocationUseCase{ctx: ctx, trackers: make(map[string]*userTracker)}
}

func (uc *LocationUseCase) trackerFor(userID string) *userTracker {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	t, ok := uc.trackers[userID]
	if !ok {
		provider := geo.NewManualProvider()
		t = &userTracker{provider: provider, tracker: geo.NewTracker(provider)}
		t.tracker.Start(uc.ctx)
		uc.trackers[userID] = t
	}
	return t
}

func (uc *LocationUseCase) UpdateLocation(userID string, coords entity.Coordinates) {
	uc.trackerFor(userID).provider.Update(coords)
}

// ReportError records a failed position fix, e.g. permission denied.
func (uc *LocationUseCase) ReportError(userID string, code geo.PositionErrorCode, message string) {
	uc.trackerFor(userID).provider.Fail(&geo.PositionError{Code: code, Message: message})
}

// State is loading until the user reported anything.
func (uc *LocationUseCase) State(userID string) geo.State {
	uc.mu.Lock()
	t, ok := uc.trackers[userID]
	uc.mu.Unlock()
	if !ok {
		return geo.State{Loading: true}
	}
	return t.tracker.State()
}

func (uc *LocationUseCase) Position(userID string) (entity.Coordinates, bool) {
	st := uc.State(userID)
	if st.Coordinates == nil {
		return entity.Coordinates{}, false
	}
	return *st.Coordinates, true
}

// Close stops every tracker.
func (uc *LocationUseCase) Close() {
	uc.mu.Lock()
	trackers := uc.trackers
	uc.trackers = make(map[string]*userTracker)
	uc.mu.Unlock()

	for _, t := range trackers {
		t.tracker.Stop()
	}
}
