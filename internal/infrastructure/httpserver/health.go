package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health status values reported by the health endpoint.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// HealthChecker reports whether the database is reachable. The context comes
// from the current request so cancellation is respected.
type HealthChecker interface {
	CheckDatabase(ctx context.Context) error
}

// RegisterHealthEndpoint registers GET <prefix>/health on the group. The
// endpoint pings the database and reports overall and database status.
func RegisterHealthEndpoint(g *echo.Group, checker HealthChecker) {
	g.GET("/health", func(c echo.Context) error {
		if checker != nil {
			if err := checker.CheckDatabase(c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, Envelope{
					"success":  false,
					"status":   StatusUnhealthy,
					"database": DatabaseDisconnected,
				})
			}
		}

		return c.JSON(http.StatusOK, Envelope{
			"success":  true,
			"status":   StatusHealthy,
			"database": DatabaseConnected,
		})
	})
}
