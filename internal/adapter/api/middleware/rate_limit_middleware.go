package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"mados/internal/infrastructure/ratelimit"
	"mados/pkg/errors"
	"mados/pkg/logger"
	"mados/pkg/response"
)

// Limiter is the subset of ratelimit.RateLimiter the middleware needs.
type Limiter interface {
	Allow(key, action string) (bool, time.Duration)
}

// RateLimitMiddleware limits requests per user, or per client IP for
// anonymous requests.
func RateLimitMiddleware(limiter Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := UserID(c)
			if key == "" {
				key = "ip:" + c.RealIP()
			}

			ok, wait := limiter.Allow(key, ratelimit.ActionRequest)
			if !ok {
				seconds := int(wait.Seconds()) + 1
				logger.Warn("RATE LIMIT: blocked request from %s (retry in %ds)", key, seconds)
				c.Response().Header().Set("Retry-After", fmt.Sprint(seconds))
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded"))
			}

			return next(c)
		}
	}
}
