package middleware

import (
	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	apperrors "task-list.com/task-list/internal/errors"
	"task-list.com/task-list/internal/ratelimit"
)

// RateLimiter rejects clients that exceed the limiter's budget. Limiter
// failures let the request through.
func RateLimiter(limiter ratelimit.Limiter, logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				logger.Warn("rate limiter unavailable", "err", err)
				return next(c)
			}
			if !allowed {
				return apperrors.ErrRateLimited
			}

			return next(c)
		}
	}
}
