package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abbykyun/daa-visual/internal/metrics"
)

// unmatchedRoute labels requests that hit no registered route.
const unmatchedRoute = "unmatched"

// Metrics counts every request by method, route pattern and status.
// Latency is observed for plain requests only: a playback stream stays open
// for the whole session and would swamp the histogram.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		stream := c.IsWebsocket()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		labels := []string{c.Request.Method, route, strconv.Itoa(c.Writer.Status())}

		metrics.RequestsTotal.WithLabelValues(labels...).Inc()
		if !stream {
			metrics.RequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		}
	}
}
