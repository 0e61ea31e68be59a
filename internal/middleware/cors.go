// Package middleware provides HTTP middleware for the API server.
package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// DefaultCORSMaxAge is the preflight cache lifetime in seconds (24 hours).
const DefaultCORSMaxAge = 86400

// CORSConfig holds CORS middleware configuration.
type CORSConfig struct {
	// AllowOrigins lists origins that may access the API. "*" allows all.
	AllowOrigins []string

	// AllowMethods lists methods allowed when accessing the API.
	AllowMethods []string

	// AllowHeaders lists request headers accepted on actual requests.
	AllowHeaders []string

	// MaxAge is how long (in seconds) a preflight result may be cached.
	MaxAge int
}

// DefaultCORSConfig returns a CORSConfig with sensible defaults.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			echo.GET,
			echo.HEAD,
			echo.PUT,
			echo.POST,
			echo.DELETE,
			echo.OPTIONS,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			echo.HeaderXRequestID,
		},
		MaxAge: DefaultCORSMaxAge,
	}
}

// CORS returns a CORS middleware with the given configuration.
func CORS(config CORSConfig) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: config.AllowOrigins,
		AllowMethods: config.AllowMethods,
		AllowHeaders: config.AllowHeaders,
		MaxAge:       config.MaxAge,
	})
}

// CORSWithOrigins returns a CORS middleware restricted to specific origins.
func CORSWithOrigins(origins ...string) echo.MiddlewareFunc {
	config := DefaultCORSConfig()
	config.AllowOrigins = origins
	return CORS(config)
}
