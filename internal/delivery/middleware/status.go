package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// statusOf reports the status a request will end with. Errors are rendered
// later by the outermost logger, so the response may not be committed yet.
func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
