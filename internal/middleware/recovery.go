package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

// DefaultStackSize is the captured stack trace size (4KB).
const DefaultStackSize = 4 << 10

// RecoveryConfig holds configuration for the recovery middleware.
type RecoveryConfig struct {
	// Logger is the structured logger for panic reports.
	Logger *slog.Logger

	// StackSize is the maximum size of the captured stack trace.
	StackSize int
}

// DefaultRecoveryConfig returns a RecoveryConfig with sensible defaults.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{
		Logger:    slog.Default(),
		StackSize: DefaultStackSize,
	}
}

// Recovery returns a middleware that recovers from handler panics, logs them
// and answers with a generic server error.
func Recovery(logger *slog.Logger) echo.MiddlewareFunc {
	config := DefaultRecoveryConfig()
	config.Logger = logger
	return RecoveryWithConfig(config)
}

// RecoveryWithConfig returns a recovery middleware with custom configuration.
func RecoveryWithConfig(config RecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.StackSize == 0 {
		config.StackSize = DefaultStackSize
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					stack := make([]byte, config.StackSize)
					length := runtime.Stack(stack, false)

					req := c.Request()
					config.Logger.Error("panic recovered",
						slog.String("error", err.Error()),
						slog.String("method", req.Method),
						slog.String("path", req.URL.Path),
						slog.String("remote_ip", c.RealIP()),
						slog.String("stack", string(stack[:length])),
					)

					if !c.Response().Committed {
						_ = c.JSON(http.StatusInternalServerError, map[string]any{
							"success": false,
							"message": "Server error",
						})
					}
				}
			}()

			return next(c)
		}
	}
}
