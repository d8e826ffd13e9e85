package middleware

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests with 429 once the shared token bucket is empty.
func RateLimit(rps float64, burst int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
			}
			return next(c)
		}
	}
}

// MaxConcurrent rejects requests with 503 while max requests are in flight.
func MaxConcurrent(max int32) echo.MiddlewareFunc {
	var active int32

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if atomic.AddInt32(&active, 1) > max {
				atomic.AddInt32(&active, -1)
				return echo.NewHTTPError(http.StatusServiceUnavailable, "Server overloaded")
			}
			defer atomic.AddInt32(&active, -1)
			return next(c)
		}
	}
}

// Timeout bounds the request context. Storage calls observe the deadline
// through the context they are given.
func Timeout(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
