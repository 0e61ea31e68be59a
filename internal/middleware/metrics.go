package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/artifyhq/artify-server/internal/infrastructure/metrics"
)

// Metrics returns a middleware that records request counts, latency and
// in-flight gauge per route. The route template (c.Path) is used as the path
// label so parametrized routes do not explode cardinality.
func Metrics(m *metrics.HTTPMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			m.RequestsInFlight.Inc()
			defer m.RequestsInFlight.Dec()

			start := time.Now()
			err := next(c)
			elapsed := time.Since(start)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			method := c.Request().Method
			m.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			m.RequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())

			return err
		}
	}
}
