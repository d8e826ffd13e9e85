package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRateLimit(t *testing.T) {
	e := echo.New()
	e.Use(RateLimit(0.001, 2))
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/").Code)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(e, http.MethodGet, "/").Code)
}

func TestMaxConcurrent(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	e := echo.New()
	e.Use(MaxConcurrent(1))
	e.GET("/slow", func(c echo.Context) error {
		close(entered)
		<-release
		return c.NoContent(http.StatusOK)
	})
	e.GET("/fast", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	var wg sync.WaitGroup
	wg.Add(1)
	var slowCode int
	go func() {
		defer wg.Done()
		slowCode = serve(e, http.MethodGet, "/slow").Code
	}()

	<-entered
	assert.Equal(t, http.StatusServiceUnavailable, serve(e, http.MethodGet, "/fast").Code)

	close(release)
	wg.Wait()
	assert.Equal(t, http.StatusOK, slowCode)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/fast").Code)
}

func TestTimeout_SetsDeadline(t *testing.T) {
	e := echo.New()
	e.Use(Timeout(time.Second))

	var hasDeadline bool
	e.GET("/", func(c echo.Context) error {
		_, hasDeadline = c.Request().Context().Deadline()
		return c.NoContent(http.StatusOK)
	})

	serve(e, http.MethodGet, "/")
	assert.True(t, hasDeadline)
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/missing", func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound, "nope") })
	e.GET("/boom", func(c echo.Context) error { return assert.AnError })

	serve(e, http.MethodGet, "/ok")
	serve(e, http.MethodGet, "/missing")
	serve(e, http.MethodGet, "/boom")

	snap := m.Snapshot()
	assert.Equal(t, uint64(3), snap["totalRequests"])
	assert.Equal(t, uint64(1), snap["successfulRequests"])
	assert.Equal(t, uint64(2), snap["failedRequests"])
	assert.Equal(t, int32(0), snap["activeRequests"])
}

func TestTracing_PassesThrough(t *testing.T) {
	e := echo.New()
	e.Use(Tracing())
	e.GET("/users/:id", func(c echo.Context) error { return c.String(http.StatusOK, c.Param("id")) })

	rec := serve(e, http.MethodGet, "/users/42")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", rec.Body.String())
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID(), AccessLog())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	rec := serve(e, http.MethodGet, "/")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "client-id")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "client-id", rec.Header().Get(echo.HeaderXRequestID))
}
