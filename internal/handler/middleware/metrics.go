package middleware

import (
	"time"

	"find-my-space/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency by route template, not raw path.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
