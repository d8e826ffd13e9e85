package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"user-management-service/internal/application/interfaces"
	"user-management-service/internal/delivery/handler"
	"user-management-service/internal/delivery/middleware"
	"user-management-service/internal/web"
)

type Options struct {
	RateLimitRPS          float64
	RateLimitBurst        int
	MaxConcurrentRequests int32
	RequestTimeout        time.Duration
}

// New assembles the echo instance: middleware chain, API routes and client.
func New(opts Options, userService interfaces.UserService) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.ErrorHandler

	metrics := middleware.NewMetrics()

	e.Use(
		middleware.RequestID(),
		middleware.AccessLog(),
		echomw.Recover(),
		middleware.Tracing(),
		metrics.Middleware(),
		middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst),
		middleware.MaxConcurrent(opts.MaxConcurrentRequests),
		middleware.Timeout(opts.RequestTimeout),
	)

	handler.NewHandler(userService, metrics.Snapshot).Register(e)
	web.Register(e)
	return e
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
// within shutdownTimeout.
func Run(ctx context.Context, e *echo.Echo, addr string, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server running on %s", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
