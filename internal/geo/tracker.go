package geo

import (
	"context"
	"sync"

	"mados/internal/domain/entity"
	"mados/pkg/logger"
)

// State is the latest known position. Loading is true until the first
// sample arrives; a sample replaces both Coordinates and Err.
type State struct {
	Loading     bool                `json:"loading"`
	Coordinates *entity.Coordinates `json:"coordinates"`
	Err         *PositionError      `json:"error"`
}

// Tracker keeps the latest sample of a Provider. Failed samples are kept as
// they are; there is no retry.
type Tracker struct {
	provider Provider

	mu     sync.RWMutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}
}

func NewTracker(provider Provider) *Tracker {
	return &Tracker{provider: provider, state: State{Loading: true}}
}

// Start subscribes to the provider. A nil provider or a Watch error is
// recorded as an unsupported position error.
func (t *Tracker) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return
	}

	if t.provider == nil {
		t.state = State{Err: &PositionError{Code: ErrUnsupported, Message: "geolocation is not supported"}}
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	samples, err := t.provider.Watch(ctx)
	if err != nil {
		cancel()
		logger.Warn("geolocation watch failed: %v", err)
		t.state = State{Err: &PositionError{Code: ErrUnsupported, Message: err.Error()}}
		return
	}

	t.cancel = cancel
	t.done = make(chan struct{})
	go t.run(samples, t.done)
}

func (t *Tracker) run(samples <-chan Sample, done chan struct{}) {
	defer close(done)
	for s := range samples {
		t.mu.Lock()
		t.state = State{Coordinates: cloneCoords(s.Coordinates), Err: s.Err}
		t.mu.Unlock()
	}
}

// Stop cancels the subscription and waits for the tracker goroutine.
func (t *Tracker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (t *Tracker) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return State{
		Loading:     t.state.Loading,
		Coordinates: cloneCoords(t.state.Coordinates),
		Err:         t.state.Err,
	}
}

// Position returns the coordinates when the latest sample has them.
func (t *Tracker) Position() (entity.Coordinates, bool) {
	st := t.State()
	if st.Coordinates == nil {
		return entity.Coordinates{}, false
	}
	return *st.Coordinates, true
}

func cloneCoords(c *entity.Coordinates) *entity.Coordinates {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}
