package main

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artifyhq/artify-server/internal/config"
	"github.com/artifyhq/artify-server/internal/infrastructure/auth"
	"github.com/artifyhq/artify-server/internal/infrastructure/metrics"
)

// newTestContainer builds a container without a database, enough to exercise
// route registration. Metrics go to a private registry so repeated calls do
// not collide.
func newTestContainer() *Container {
	cfg := config.DefaultConfig()
	return &Container{
		Config:  cfg,
		Logger:  slog.Default(),
		Tokens:  auth.NewTokenService(cfg.Auth.JWTSecret, time.Hour),
		Hasher:  auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		Metrics: metrics.NewHTTPMetrics(prometheus.NewRegistry()),
	}
}

func TestSetupRoutes_ReturnsRouter(t *testing.T) {
	router := SetupRoutes(newTestContainer(), echo.New())

	require.NotNil(t, router)
	require.NotNil(t, router.Echo())
}

func TestSetupRoutes_RegistersAPIRoutes(t *testing.T) {
	router := SetupRoutes(newTestContainer(), echo.New())

	registered := make(map[string]bool)
	for _, route := range router.Echo().Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		http.MethodGet + " /metrics",
		http.MethodGet + " /api/health",
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/login",
		http.MethodPost + " /api/auth/mock-social",
		http.MethodGet + " /api/artworks",
		http.MethodGet + " /api/artworks/featured",
		http.MethodGet + " /api/artworks/latest",
		http.MethodGet + " /api/artworks/:id",
		http.MethodPost + " /api/artworks/seed",
		http.MethodGet + " /api/artworks/user/:userId",
		http.MethodPost + " /api/artworks",
		http.MethodPut + " /api/artworks/:id",
		http.MethodDelete + " /api/artworks/:id",
		http.MethodPost + " /api/artworks/:id/like",
		http.MethodGet + " /api/favorites/:userId",
		http.MethodGet + " /api/favorites/check/:artworkId",
		http.MethodPost + " /api/favorites",
		http.MethodDelete + " /api/favorites/:artworkId",
	}
	for _, want := range expected {
		assert.True(t, registered[want], "missing route %s", want)
	}
}
