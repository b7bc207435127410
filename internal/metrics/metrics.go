// Package metrics exposes Prometheus instruments for the HTTP layer and
// a gin middleware that records them.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "path", "status"},
	)

	ChatCompletionCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_completion_count",
			Help: "Total number of AI chat completions",
		},
		[]string{"status"}, // status: success, failed, rate_limited
	)
)

// Middleware records duration and count per route. The route template
// (e.g. /api/projects/:id) is used rather than the raw path so that ids
// do not explode label cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		HTTPRequestCount.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}

// IncrementChatCompletion bumps the chat counter for one outcome.
func IncrementChatCompletion(status string) {
	ChatCompletionCount.WithLabelValues(status).Inc()
}
