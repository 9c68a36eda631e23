package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(now *time.Time) *RateLimiter {
	rl := NewRateLimiter(3)
	rl.now = func() time.Time { return *now }
	return rl
}

func TestAllowRespectsBurstThenRefills(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	rl := newTestLimiter(&now)

	for i := 0; i < 3; i++ {
		ok, _ := rl.Allow("user-1", ActionSendMessage)
		assert.True(t, ok, "message %d", i)
	}

	ok, wait := rl.Allow("user-1", ActionSendMessage)
	assert.False(t, ok)
	assert.InDelta(t, float64(20*time.Second), float64(wait), float64(time.Millisecond))

	now = now.Add(20 * time.Second)
	ok, _ = rl.Allow("user-1", ActionSendMessage)
	assert.True(t, ok)
}

func TestBucketsAreSeparatedByUserAndAction(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	rl := newTestLimiter(&now)

	for i := 0; i < 3; i++ {
		rl.Allow("user-1", ActionSendMessage)
	}

	ok, _ := rl.Allow("user-2", ActionSendMessage)
	assert.True(t, ok)
	ok, _ = rl.Allow("user-1", ActionComment)
	assert.True(t, ok)
}

func TestTokensAndCleanup(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	rl := newTestLimiter(&now)

	tokens, burst := rl.Tokens("user-1", ActionSendMessage)
	assert.Equal(t, 3, burst)
	assert.Equal(t, 3.0, tokens)

	rl.Allow("user-1", ActionSendMessage)
	tokens, _ = rl.Tokens("user-1", ActionSendMessage)
	assert.InDelta(t, 2.0, tokens, 0.01)

	now = now.Add(2 * time.Hour)
	rl.Cleanup(time.Hour)
	assert.Empty(t, rl.buckets)
}

func TestSetPolicy(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	rl := newTestLimiter(&now)
	rl.SetPolicy(ActionRequest, PerMinute(1))

	ok, _ := rl.Allow("ip:10.0.0.1", ActionRequest)
	assert.True(t, ok)
	ok, wait := rl.Allow("ip:10.0.0.1", ActionRequest)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, wait.Round(time.Second))
}
