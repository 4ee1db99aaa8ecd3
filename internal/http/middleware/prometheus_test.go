package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestPrometheus(t *testing.T) (*PrometheusMiddleware, *fiber.App) {
	t.Helper()
	// Fresh registry per test avoids duplicate registration.
	promMiddleware, err := NewPrometheusMiddleware(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("failed to create middleware: %v", err)
	}
	app := fiber.New()
	app.Use(promMiddleware.Handler())
	return promMiddleware, app
}

func TestPrometheusMiddleware(t *testing.T) {
	promMiddleware, app := newTestPrometheus(t)

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Delete("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad request")
	})

	resp, _ := app.Test(httptest.NewRequest("GET", "/test", nil))
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	if count := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("GET", "/test", "200")); count != 1 {
		t.Errorf("expected count 1, got %f", count)
	}

	app.Test(httptest.NewRequest("DELETE", "/test", nil))
	if count := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("DELETE", "/test", "204")); count != 1 {
		t.Errorf("expected count 1 for DELETE, got %f", count)
	}

	app.Test(httptest.NewRequest("GET", "/error", nil))
	if count := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("GET", "/error", "400")); count != 1 {
		t.Errorf("expected count 1 for error, got %f", count)
	}
}

func TestPrometheusMiddleware_ExcludeMetrics(t *testing.T) {
	promMiddleware, app := newTestPrometheus(t)
	app.Get(metricsPath, promMiddleware.Exposition())

	app.Test(httptest.NewRequest("GET", "/metrics", nil))

	if n := testutil.CollectAndCount(promMiddleware.requestCount); n != 0 {
		t.Errorf("expected 0 series for http_requests_total, got %d", n)
	}
}

func TestPrometheusMiddleware_PathPattern(t *testing.T) {
	promMiddleware, app := newTestPrometheus(t)

	app.Get("/medications/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Test(httptest.NewRequest("GET", "/medications/123", nil))
	app.Test(httptest.NewRequest("GET", "/medications/456", nil))

	count := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("GET", "/medications/:id", "200"))
	if count != 2 {
		t.Errorf("expected count 2 for pattern /medications/:id, got %f", count)
	}

	if n := testutil.CollectAndCount(promMiddleware.requestDuration); n != 1 {
		t.Errorf("expected 1 histogram series, got %d", n)
	}
}

func TestPrometheusMiddleware_Exposition(t *testing.T) {
	promMiddleware, app := newTestPrometheus(t)
	app.Get("/test", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get(metricsPath, promMiddleware.Exposition())

	app.Test(httptest.NewRequest("GET", "/test", nil))
	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	if err != nil {
		t.Fatalf("metrics request failed: %v", err)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `http_requests_total{method="GET",path="/test",status="200"} 1`) {
		t.Errorf("exposition missing request counter:\n%s", body)
	}
}
