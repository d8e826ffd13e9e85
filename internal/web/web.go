package web

import (
	"embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFiles embed.FS

// Prefix is where the client is served.
const Prefix = "/ui"

// Register serves the single-page client under Prefix. A bare Prefix
// redirects to the trailing-slash form so relative asset paths resolve.
func Register(e *echo.Echo) {
	e.GET(Prefix, func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, Prefix+"/")
	})
	e.StaticFS(Prefix, echo.MustSubFS(staticFiles, "static"))
}
