package middleware

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HTTP status code thresholds for log levels.
const (
	statusClientError = 400
	statusServerError = 500
)

const (
	// RequestIDHeader is the header carrying the request ID.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the echo context key for the request ID.
	RequestIDKey = "request_id"
)

// LoggingConfig holds configuration for the request logging middleware.
type LoggingConfig struct {
	Logger    *slog.Logger
	SkipPaths []string
}

// DefaultLoggingConfig returns a LoggingConfig with sensible defaults.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Logger:    slog.Default(),
		SkipPaths: []string{"/api/health"},
	}
}

// Logging returns a middleware that logs each request with a request ID. IDs
// arriving on X-Request-ID are reused so callers can correlate across
// services; otherwise a fresh UUID is generated.
func Logging(config LoggingConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	skipPaths := make(map[string]struct{}, len(config.SkipPaths))
	for _, path := range config.SkipPaths {
		skipPaths[path] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			path := req.URL.Path

			if _, ok := skipPaths[path]; ok {
				return next(c)
			}

			requestID := req.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			res.Header().Set(RequestIDHeader, requestID)
			c.Set(RequestIDKey, requestID)

			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			status := res.Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}

			attrs := []slog.Attr{
				slog.String("request_id", requestID),
				slog.String("method", req.Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Duration("latency", latency),
				slog.String("remote_ip", c.RealIP()),
			}
			if query := req.URL.RawQuery; query != "" {
				attrs = append(attrs, slog.String("query", query))
			}

			level := slog.LevelInfo
			switch {
			case status >= statusServerError:
				level = slog.LevelError
			case status >= statusClientError:
				level = slog.LevelWarn
			}
			if level != slog.LevelInfo && err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}

			config.Logger.LogAttrs(req.Context(), level, "HTTP request", attrs...)

			return err
		}
	}
}
