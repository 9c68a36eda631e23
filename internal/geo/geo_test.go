package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"mados/internal/domain/entity"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	solo    = entity.Coordinates{Latitude: -7.5666, Longitude: 110.8166}
	jakarta = entity.Coordinates{Latitude: -6.2088, Longitude: 106.8456}
)

func TestDistanceToSelfIsZero(t *testing.T) {
	assert.Zero(t, Distance(solo, solo))
	assert.Zero(t, Distance(jakarta, jakarta))
}

func TestDistanceIsSymmetric(t *testing.T) {
	assert.InDelta(t, Distance(solo, jakarta), Distance(jakarta, solo), 1e-6)
}

func TestDistanceKnownValue(t *testing.T) {
	// Solo to Jakarta is roughly 470 km in a straight line.
	d := Distance(solo, jakarta)
	assert.InDelta(t, 470_000, d, 15_000)
}

func TestWithin(t *testing.T) {
	near := entity.Coordinates{Latitude: solo.Latitude + 0.0001, Longitude: solo.Longitude}

	assert.True(t, Within(solo, near, 20))
	assert.False(t, Within(solo, jakarta, 20))
}

func TestTrackerStaticProvider(t *testing.T) {
	tracker := NewTracker(StaticProvider{Coordinates: solo})
	assert.True(t, tracker.State().Loading)

	tracker.Start(context.Background())
	defer tracker.Stop()

	require.Eventually(t, func() bool {
		_, ok := tracker.Position()
		return ok
	}, time.Second, 5*time.Millisecond)

	st := tracker.State()
	assert.False(t, st.Loading)
	assert.Nil(t, st.Err)
	assert.Equal(t, solo, *st.Coordinates)
}

func TestTrackerKeepsLatestSample(t *testing.T) {
	provider := NewManualProvider()
	tracker := NewTracker(provider)
	tracker.Start(context.Background())
	defer tracker.Stop()

	provider.Update(solo)
	require.Eventually(t, func() bool {
		pos, ok := tracker.Position()
		return ok && pos == solo
	}, time.Second, 5*time.Millisecond)

	provider.Fail(&PositionError{Code: ErrPermissionDenied, Message: "denied"})
	require.Eventually(t, func() bool {
		return tracker.State().Err != nil
	}, time.Second, 5*time.Millisecond)

	st := tracker.State()
	assert.Nil(t, st.Coordinates)
	assert.Equal(t, ErrPermissionDenied, st.Err.Code)
}

type failingProvider struct{}

func (failingProvider) Watch(context.Context) (<-chan Sample, error) {
	return nil, errors.New("no gps")
}

func TestTrackerWithoutUsableProvider(t *testing.T) {
	for _, tracker := range []*Tracker{NewTracker(nil), NewTracker(failingProvider{})} {
		tracker.Start(context.Background())
		st := tracker.State()
		assert.False(t, st.Loading)
		require.NotNil(t, st.Err)
		assert.Equal(t, ErrUnsupported, st.Err.Code)
		tracker.Stop()
	}
}

func TestTrackerStopsWithParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tracker := NewTracker(NewManualProvider())
	tracker.Start(ctx)

	cancel()
	tracker.Stop()
	tracker.Stop()
}

func TestManualProviderReplaysLastSample(t *testing.T) {
	provider := NewManualProvider()
	provider.Update(jakarta)

	ctx, cancel := context.WithCancel(context.Background())
	samples, err := provider.Watch(ctx)
	require.NoError(t, err)

	s := <-samples
	require.NotNil(t, s.Coordinates)
	assert.Equal(t, jakarta, *s.Coordinates)

	cancel()
	for range samples {
	}
}
