package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// Logger emits one structured line per request with request_id, method, path,
// status and latency (milliseconds). trace_id is added when the request is traced.
func Logger(log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		fields := logrus.Fields{
			"component":  "http",
			"request_id": RequestIDFrom(c),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     statusOf(c, err),
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
		}
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.HasTraceID() {
			fields["trace_id"] = sc.TraceID().String()
		}

		entry := log.WithFields(fields)
		if status := fields["status"].(int); status >= fiber.StatusInternalServerError {
			entry.Error("request completed")
		} else {
			entry.Info("request completed")
		}

		return err
	}
}

// statusOf resolves the final status code. Errors returned up the chain have not
// reached the global error handler yet, so their code is taken from the error.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
