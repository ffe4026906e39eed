package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/undeniable-app/undeniable/adapters/prometheus"
	"github.com/undeniable-app/undeniable/utils/constant"
)

// PrometheusMiddleware returns a Gin middleware for collecting metrics.
// Paths are labelled by route template so labels stay bounded.
func PrometheusMiddleware(mc *prometheus.MetricsCollector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		mc.HttpRequestsInFlight().Inc()
		defer mc.HttpRequestsInFlight().Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		statusCode := strconv.Itoa(c.Writer.Status())
		labels := []string{mc.ServiceName(), c.Request.Method, path, statusCode}

		mc.RequestCount().WithLabelValues(labels...).Inc()
		mc.RequestDuration().WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		mc.ResponseSize().WithLabelValues(labels...).Observe(float64(c.Writer.Size()))
	}
}

// RegisterMetricsEndpoint registers the Prometheus metrics endpoint
func RegisterMetricsEndpoint(router gin.IRoutes, mc *prometheus.MetricsCollector) {
	router.GET(constant.MetricsEndpoint, gin.WrapH(promhttp.HandlerFor(
		mc.Registry(),
		promhttp.HandlerOpts{},
	)))
}
