package middleware

import (
	"time"

	"github.com/alimgiray/personapi/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per method and route
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		m.ObserveRequest(c.Request.Method, routeLabel(c), c.Writer.Status(), time.Since(start))
	}
}
