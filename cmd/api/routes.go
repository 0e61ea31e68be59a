// Package main provides the API server entry point.
package main

import (
	"github.com/labstack/echo/v4"

	httphandler "github.com/artifyhq/artify-server/internal/handler/http"
	"github.com/artifyhq/artify-server/internal/infrastructure/httpserver"
	"github.com/artifyhq/artify-server/internal/middleware"
)

// SetupRoutes configures all API routes and middleware chains on the given
// Echo instance.
func SetupRoutes(c *Container, e *echo.Echo) *httpserver.Router {
	corsConfig := middleware.DefaultCORSConfig()
	if len(c.Config.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = c.Config.CORS.AllowOrigins
	}

	router := httpserver.NewRouter(e, httpserver.RouterConfig{
		Logger:         c.Logger,
		AuthMiddleware: middleware.RequireAuth(c.Tokens, c.UserRepo),
		CORSConfig:     corsConfig,
		LoggingConfig: middleware.LoggingConfig{
			Logger:    c.Logger,
			SkipPaths: []string{"/api/health"},
		},
		RecoveryConfig: middleware.RecoveryConfig{
			Logger: c.Logger,
		},
		Metrics:   c.Metrics,
		APIPrefix: httpserver.DefaultAPIPrefix,
	})

	router.RegisterMetricsEndpoint()
	httpserver.RegisterHealthEndpoint(router.Public(), c)

	httphandler.NewAuthHandler(c.IdentityService).RegisterRoutes(router)
	httphandler.NewArtworkHandler(c.ArtworkService).RegisterRoutes(router)
	httphandler.NewFavoriteHandler(c.FavoriteService).RegisterRoutes(router)

	router.PrintRoutes()

	return router
}
