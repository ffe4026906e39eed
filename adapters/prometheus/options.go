package prometheus

import "github.com/prometheus/client_golang/prometheus"

// MetricsCollectorOptions defines the options for configuring MetricsCollector.
type MetricsCollectorOptions func(*MetricsCollector)

// WithServiceName sets the service name for the metrics collector.
func WithServiceName(serviceName string) MetricsCollectorOptions {
	return func(collector *MetricsCollector) {
		collector.serviceName = serviceName
	}
}

// WithRegistry sets the Prometheus registry for the metrics collector.
func WithRegistry(registry *prometheus.Registry) MetricsCollectorOptions {
	return func(collector *MetricsCollector) {
		collector.registry = registry
	}
}

// WithProcessMetrics adds the Go runtime and process collectors.
func WithProcessMetrics(enabled bool) MetricsCollectorOptions {
	return func(collector *MetricsCollector) {
		collector.processMetrics = enabled
	}
}

// ServiceName returns the service name.
func (collector *MetricsCollector) ServiceName() string {
	return collector.serviceName
}

// Registry returns the Prometheus registry.
func (collector *MetricsCollector) Registry() *prometheus.Registry {
	return collector.registry
}

// CustomMetrics returns the custom metrics.
func (collector *MetricsCollector) CustomMetrics() map[string]prometheus.Collector {
	return collector.customMetrics
}

// HttpRequestsInFlight returns the gauge metric for the number of HTTP requests in flight.
func (collector *MetricsCollector) HttpRequestsInFlight() prometheus.Gauge {
	return collector.httpRequestsInFlight
}

// RequestCount returns the counter metric for the number of HTTP requests.
func (collector *MetricsCollector) RequestCount() *prometheus.CounterVec {
	return collector.requestCount
}

// RequestDuration returns the histogram metric for the duration of HTTP requests.
func (collector *MetricsCollector) RequestDuration() *prometheus.HistogramVec {
	return collector.requestDuration
}

// ResponseSize returns the histogram metric for the size of HTTP responses.
func (collector *MetricsCollector) ResponseSize() *prometheus.HistogramVec {
	return collector.responseSize
}
