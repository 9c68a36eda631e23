package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	ActionSendMessage = "send_message"
	ActionCreatePost  = "create_post"
	ActionComment     = "comment"
	ActionReview      = "review"
	ActionAnalyze     = "analyze_image"
	ActionRequest     = "api_request"
)

// Policy is a sustained rate plus the burst allowed on top of it.
type Policy struct {
	Every time.Duration
	Burst int
}

// PerMinute spreads n events evenly over a minute with a burst of n.
func PerMinute(n int) Policy {
	if n <= 0 {
		n = 1
	}
	return Policy{Every: time.Minute / time.Duration(n), Burst: n}
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per user and action.
type RateLimiter struct {
	policies map[string]Policy
	fallback Policy
	now      func() time.Time

	mutex   sync.Mutex
	buckets map[string]*bucket
}

// NewRateLimiter builds a limiter where sending messages is limited to
// messagesPerMinute and the other actions use fixed policies.
func NewRateLimiter(messagesPerMinute int) *RateLimiter {
	return &RateLimiter{
		policies: map[string]Policy{
			ActionSendMessage: PerMinute(messagesPerMinute),
			ActionCreatePost:  {Every: 2 * time.Minute, Burst: 5},
			ActionComment:     PerMinute(30),
			ActionReview:      {Every: time.Minute, Burst: 5},
			ActionAnalyze:     PerMinute(6),
			ActionRequest:     PerMinute(120),
		},
		fallback: PerMinute(20),
		now:      time.Now,
		buckets:  make(map[string]*bucket),
	}
}

// SetPolicy overrides the policy of one action. Existing buckets keep theirs.
func (rl *RateLimiter) SetPolicy(action string, p Policy) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	rl.policies[action] = p
}

// Allow consumes one event for the user action. When refused it returns how
// long until the next event would be allowed.
func (rl *RateLimiter) Allow(userID, action string) (bool, time.Duration) {
	now := rl.now()
	b := rl.bucketFor(userID+":"+action, action, now)

	r := b.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, 0
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Tokens reports the tokens left for a user action, or the full burst if the
// user has not acted yet.
func (rl *RateLimiter) Tokens(userID, action string) (tokens float64, burst int) {
	rl.mutex.Lock()
	b, ok := rl.buckets[userID+":"+action]
	policy := rl.policyLocked(action)
	rl.mutex.Unlock()

	if !ok {
		return float64(policy.Burst), policy.Burst
	}
	return b.limiter.TokensAt(rl.now()), b.limiter.Burst()
}

func (rl *RateLimiter) bucketFor(key, action string, now time.Time) *bucket {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		p := rl.policyLocked(action)
		b = &bucket{limiter: rate.NewLimiter(rate.Every(p.Every), p.Burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now
	return b
}

func (rl *RateLimiter) policyLocked(action string) Policy {
	if p, ok := rl.policies[action]; ok {
		return p
	}
	return rl.fallback
}

// Cleanup drops buckets idle for longer than maxIdle.
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.lastSeen) > maxIdle {
			delete(rl.buckets, key)
		}
	}
}

// StartCleanupRoutine runs Cleanup every interval until ctx is done.
func (rl *RateLimiter) StartCleanupRoutine(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				rl.Cleanup(time.Hour)
			case <-ctx.Done():
				return
			}
		}
	}()
}
