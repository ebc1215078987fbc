package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"scholarhub/internal/db"
	"scholarhub/internal/errors"
)

// ProbePaths are served without a database connection.
var ProbePaths = []string{"/health", "/diag", "/swagger"}

// ProbeSkipper skips the readiness gate for health, diagnostic and docs routes.
func ProbeSkipper(c echo.Context) bool {
	path := c.Request().URL.Path
	for _, p := range ProbePaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// Readiness makes sure the shared connection exists before the handler runs.
// When it cannot be established the request ends with 503 and the handler,
// and therefore the store, is never reached.
func Readiness(conns db.Provider, skipper middleware.Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = ProbeSkipper
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}
			if _, err := conns.Ensure(c.Request().Context()); err != nil {
				httpErr := errors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}
