package geo

import (
	"context"
	"fmt"
	"sync"

	"mados/internal/domain/entity"
)

type PositionErrorCode int

const (
	ErrUnsupported         PositionErrorCode = 0
	ErrPermissionDenied    PositionErrorCode = 1
	ErrPositionUnavailable PositionErrorCode = 2
	ErrTimeout             PositionErrorCode = 3
)

type PositionError struct {
	Code    PositionErrorCode `json:"code"`
	Message string            `json:"message"`
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("geolocation error %d: %s", e.Code, e.Message)
}

// Sample is one update from a Provider: either a position or an error.
type Sample struct {
	Coordinates *entity.Coordinates
	Err         *PositionError
}

// Provider streams position samples until ctx is done, then closes the
// channel. A provider that cannot run at all returns an error from Watch.
type Provider interface {
	Watch(ctx context.Context) (<-chan Sample, error)
}

// StaticProvider reports one fixed position.
type StaticProvider struct {
	Coordinates entity.Coordinates
}

func (p StaticProvider) Watch(ctx context.Context) (<-chan Sample, error) {
	ch := make(chan Sample, 1)
	coords := p.Coordinates
	ch <- Sample{Coordinates: &coords}
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

// ManualProvider relays positions pushed with Update to every watcher.
type ManualProvider struct {
	mu       sync.Mutex
	watchers map[chan Sample]struct{}
	last     *Sample
}

func NewManualProvider() *ManualProvider {
	return &ManualProvider{watchers: make(map[chan Sample]struct{})}
}

func (p *ManualProvider) Watch(ctx context.Context) (<-chan Sample, error) {
	ch := make(chan Sample, 1)

	p.mu.Lock()
	p.watchers[ch] = struct{}{}
	if p.last != nil {
		ch <- *p.last
	}
	p.mu.Unlock()

	go func() {
		<-ctx.Done()
		p.mu.Lock()
		delete(p.watchers, ch)
		close(ch)
		p.mu.Unlock()
	}()
	return ch, nil
}

func (p *ManualProvider) Update(coords entity.Coordinates) {
	p.publish(Sample{Coordinates: &coords})
}

func (p *ManualProvider) Fail(err *PositionError) {
	p.publish(Sample{Err: err})
}

// publish keeps only the newest sample for slow watchers.
func (p *ManualProvider) publish(s Sample) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.last = &s
	for ch := range p.watchers {
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}
