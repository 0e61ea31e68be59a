package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artifyhq/artify-server/internal/middleware"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(middleware.Logging(middleware.LoggingConfig{Logger: logger}))
	e.GET("/api/artworks", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	t.Run("generates request ID and logs request", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/artworks?page=2", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, buf.String(), `"path":"/api/artworks"`)
		assert.Contains(t, buf.String(), `"query":"page=2"`)
	})

	t.Run("propagates incoming request ID", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/artworks", nil)
		req.Header.Set(middleware.RequestIDHeader, "incoming-id")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "incoming-id", rec.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, buf.String(), `"request_id":"incoming-id"`)
	})

	t.Run("skips configured paths", func(t *testing.T) {
		var skipBuf bytes.Buffer
		skipLogger := slog.New(slog.NewJSONHandler(&skipBuf, nil))

		skipped := echo.New()
		skipped.Use(middleware.Logging(middleware.LoggingConfig{
			Logger:    skipLogger,
			SkipPaths: []string{"/api/health"},
		}))
		skipped.GET("/api/health", func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()
		skipped.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, skipBuf.String())
	})
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(middleware.Recovery(logger))
	e.GET("/boom", func(echo.Context) error {
		panic("unexpected state")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "Server error")
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "unexpected state")
}
