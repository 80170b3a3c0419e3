package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const loginLimitWindow = time.Minute

// LoginThrottle limits login attempts per account using Redis. The counter is
// keyed by the submitted email, falling back to the source IP when the body
// carries none, so one guessed account cannot be hammered from many addresses.
// The limiter fails open: a missing or unreachable Redis never blocks a login.
func LoginThrottle(cache *redis.Client, maxPerMinute int) echo.MiddlewareFunc {
	if maxPerMinute <= 0 {
		maxPerMinute = 5
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cache == nil {
				return next(c)
			}

			ctx := c.Request().Context()
			key := "throttle:login:" + throttleKey(c)

			cnt, err := cache.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if cnt == 1 {
				cache.Expire(ctx, key, loginLimitWindow)
			}
			if cnt > int64(maxPerMinute) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, try again later")
			}

			return next(c)
		}
	}
}

// throttleKey peeks at the login payload for the email and restores the body
// so the handler can still bind it.
func throttleKey(c echo.Context) string {
	var payload struct {
		Email string `json:"email"`
	}
	if body, err := io.ReadAll(c.Request().Body); err == nil {
		c.Request().Body = io.NopCloser(bytes.NewReader(body))
		_ = json.Unmarshal(body, &payload)
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" {
		return c.RealIP()
	}
	return email
}
