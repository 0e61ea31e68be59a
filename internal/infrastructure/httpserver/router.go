package httpserver

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/artifyhq/artify-server/internal/infrastructure/metrics"
	"github.com/artifyhq/artify-server/internal/middleware"
)

// DefaultAPIPrefix is the prefix for all API routes.
const DefaultAPIPrefix = "/api"

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	// Logger is the structured logger for router events.
	Logger *slog.Logger

	// AuthMiddleware guards the protected route group.
	AuthMiddleware echo.MiddlewareFunc

	// CORSConfig is the CORS configuration.
	CORSConfig middleware.CORSConfig

	// LoggingConfig is the logging middleware configuration.
	LoggingConfig middleware.LoggingConfig

	// RecoveryConfig is the recovery middleware configuration.
	RecoveryConfig middleware.RecoveryConfig

	// Metrics enables per-request Prometheus instrumentation when set.
	Metrics *metrics.HTTPMetrics

	// APIPrefix is the prefix for all API routes. Default is "/api".
	APIPrefix string
}

// DefaultRouterConfig returns a RouterConfig with sensible defaults.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		Logger:         slog.Default(),
		CORSConfig:     middleware.DefaultCORSConfig(),
		LoggingConfig:  middleware.DefaultLoggingConfig(),
		RecoveryConfig: middleware.DefaultRecoveryConfig(),
		APIPrefix:      DefaultAPIPrefix,
	}
}

// Router manages the route groups and global middleware chain.
type Router struct {
	echo   *echo.Echo
	config RouterConfig
	logger *slog.Logger

	public *echo.Group
	auth   *echo.Group
}

// NewRouter creates a new router on the given Echo instance.
func NewRouter(e *echo.Echo, config RouterConfig) *Router {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.APIPrefix == "" {
		config.APIPrefix = DefaultAPIPrefix
	}

	r := &Router{
		echo:   e,
		config: config,
		logger: config.Logger,
	}

	r.setupGlobalMiddleware()
	r.setupRouteGroups()

	return r
}

// setupGlobalMiddleware applies global middleware to the Echo instance.
// Recovery comes first so it catches panics from the rest of the chain.
func (r *Router) setupGlobalMiddleware() {
	r.echo.Use(middleware.RecoveryWithConfig(r.config.RecoveryConfig))
	r.echo.Use(middleware.CORS(r.config.CORSConfig))
	r.echo.Use(middleware.Logging(r.config.LoggingConfig))
	if r.config.Metrics != nil {
		r.echo.Use(middleware.Metrics(r.config.Metrics))
	}
}

// setupRouteGroups creates the public and authenticated route groups.
func (r *Router) setupRouteGroups() {
	r.public = r.echo.Group(r.config.APIPrefix)

	if r.config.AuthMiddleware != nil {
		r.auth = r.public.Group("", r.config.AuthMiddleware)
	} else {
		r.auth = r.public
		r.logger.Warn("no auth middleware configured, authenticated routes are public")
	}
}

// Echo returns the underlying Echo instance.
func (r *Router) Echo() *echo.Echo {
	return r.echo
}

// Public returns the route group requiring no authentication.
func (r *Router) Public() *echo.Group {
	return r.public
}

// Auth returns the route group requiring a valid bearer credential.
func (r *Router) Auth() *echo.Group {
	return r.auth
}

// RegisterMetricsEndpoint registers the Prometheus metrics endpoint.
func (r *Router) RegisterMetricsEndpoint() {
	r.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// PrintRoutes logs all registered routes (for debugging).
func (r *Router) PrintRoutes() {
	for _, route := range r.echo.Routes() {
		r.logger.Debug("registered route",
			slog.String("method", route.Method),
			slog.String("path", route.Path),
		)
	}
}
