package middleware

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"

	apperrors "goal-tracker.com/goal-tracker/internal/errors"
)

// RedisRateLimiter is RateLimiter with counters kept in Redis, so every
// instance behind a load balancer shares one budget per client IP. Redis
// errors let the request through.
func RedisRateLimiter(
	client rueidis.Client,
	keyPrefix string,
	limit int,
	window time.Duration,
	logger *slog.Logger,
) echo.MiddlewareFunc {
	windowSeconds := int64(window / time.Second)
	if windowSeconds < 1 {
		windowSeconds = 1
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			slot := time.Now().Unix() / windowSeconds
			key := fmt.Sprintf("%s:%s:%d", keyPrefix, c.RealIP(), slot)

			results := client.DoMulti(ctx,
				client.B().Incr().Key(key).Build(),
				client.B().Expire().Key(key).Seconds(windowSeconds).Build(),
			)

			count, err := results[0].AsInt64()
			if err != nil {
				logger.WarnContext(ctx, "rate limiter unavailable",
					slog.String("key", key),
					slog.String("error", err.Error()),
				)
				return next(c)
			}

			if count > int64(limit) {
				return apperrors.ErrRateLimited
			}

			return next(c)
		}
	}
}
