package usecase

import (
	"time"

	"mados/internal/domain/entity"
)

// RateLimiter refuses an action when the user exceeded its budget and says
// how long to wait.
type RateLimiter interface {
	Allow(userID, action string) (bool, time.Duration)
}

// PositionSource knows the last reported position of a user.
type PositionSource interface {
	Position(userID string) (entity.Coordinates, bool)
}
