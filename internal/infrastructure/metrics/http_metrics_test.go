package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/artifyhq/artify-server/internal/infrastructure/metrics"
)

func TestHTTPMetrics_Registration(t *testing.T) {
	registry := prometheus.NewRegistry()

	httpMetrics := metrics.NewHTTPMetrics(registry)

	if httpMetrics.RequestsTotal == nil {
		t.Error("RequestsTotal metric not initialized")
	}
	if httpMetrics.RequestDuration == nil {
		t.Error("RequestDuration metric not initialized")
	}
	if httpMetrics.RequestsInFlight == nil {
		t.Error("RequestsInFlight metric not initialized")
	}

	httpMetrics.RequestsInFlight.Set(3)

	got := testutil.ToFloat64(httpMetrics.RequestsInFlight)
	if got != 3 {
		t.Errorf("RequestsInFlight.Set(3) = %v, want 3", got)
	}
}

func TestHTTPMetrics_CounterIncrement(t *testing.T) {
	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	httpMetrics.RequestsTotal.WithLabelValues("GET", "/api/artworks", "200").Inc()
	httpMetrics.RequestsTotal.WithLabelValues("GET", "/api/artworks", "200").Inc()
	httpMetrics.RequestsTotal.WithLabelValues("POST", "/api/artworks", "201").Inc()

	got := testutil.ToFloat64(httpMetrics.RequestsTotal.WithLabelValues("GET", "/api/artworks", "200"))
	if got != 2 {
		t.Errorf("RequestsTotal GET = %v, want 2", got)
	}

	got = testutil.ToFloat64(httpMetrics.RequestsTotal.WithLabelValues("POST", "/api/artworks", "201"))
	if got != 1 {
		t.Errorf("RequestsTotal POST = %v, want 1", got)
	}
}

func TestHTTPMetrics_DuplicateRegistrationPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics.NewHTTPMetrics(registry)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected MustRegister to panic on duplicate registration")
		}
	}()
	metrics.NewHTTPMetrics(registry)
}
