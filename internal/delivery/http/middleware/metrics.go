package middleware

import (
	"strconv"
	"time"

	"jobmatch/internal/metrics"

	"github.com/gofiber/fiber/v3"
)

// Metrics records request counts and latency labelled by the matched route
// pattern. It must run outside ErrorMiddleware to see the final status.
func Metrics() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		status := strconv.Itoa(c.Response().StatusCode())

		metrics.HTTPRequests.WithLabelValues(c.Method(), route, status).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}
