package middleware

import (
	"time"

	"studytrack/utils"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latency per method/path.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		utils.ActiveRequests.Inc()
		defer utils.ActiveRequests.Dec()

		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start).Seconds()

		utils.HTTPRequestsTotal.WithLabelValues(
			method,
			path,
			utils.FormatStatus(status),
		).Inc()

		utils.HTTPRequestDuration.WithLabelValues(
			method,
			path,
		).Observe(duration)
	}
}
