package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root answers the liveness probe at GET / with the literal text the
// storefront clients poll for.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "server is running")
}
