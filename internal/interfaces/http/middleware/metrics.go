package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/insurance/backend/internal/infrastructure/telemetry"
)

// unmatchedRoute labels requests that hit no registered route, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// HTTPMetrics records request count, latency and in-flight gauge per route template.
func HTTPMetrics(m *telemetry.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		done := m.RequestStarted()
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		done(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
