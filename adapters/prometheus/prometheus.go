package prometheus

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// MetricsCollector is a struct for collecting Prometheus metrics.
type MetricsCollector struct {
	registry             *prometheus.Registry
	requestCount         *prometheus.CounterVec
	requestDuration      *prometheus.HistogramVec
	responseSize         *prometheus.HistogramVec
	serviceName          string
	httpRequestsInFlight prometheus.Gauge
	customMetrics        map[string]prometheus.Collector
	processMetrics       bool
}

// NewMetricsCollector creates a new Prometheus metrics collector with options.
// Every collector owns its registry unless WithRegistry is given.
func NewMetricsCollector(options ...MetricsCollectorOptions) *MetricsCollector {
	collector := &MetricsCollector{
		registry:      prometheus.NewRegistry(),
		customMetrics: make(map[string]prometheus.Collector),
		serviceName:   "undeniable",
	}

	// Apply options
	for _, option := range options {
		option(collector)
	}
	collector.serviceName = metricPrefix(collector.serviceName)

	// Register default metrics
	collector.registerDefaultMetrics()

	return collector
}

// metricPrefix turns a service name into a valid metric name prefix.
func metricPrefix(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, name)
	if name == "" {
		return "app"
	}
	return name
}

func (mc *MetricsCollector) registerDefaultMetrics() {
	mc.requestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: mc.serviceName + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status_code"},
	)

	mc.requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    mc.serviceName + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status_code"},
	)

	mc.responseSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    mc.serviceName + "_http_response_size_bytes",
			Help:    "Size of HTTP responses",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"service", "method", "path", "status_code"},
	)

	mc.httpRequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: mc.serviceName + "_http_requests_in_flight",
			Help: "Current number of HTTP requests in flight",
		},
	)

	mc.registry.MustRegister(
		mc.requestCount,
		mc.requestDuration,
		mc.responseSize,
		mc.httpRequestsInFlight,
	)
	if mc.processMetrics {
		mc.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
}

// AddCustomMetric adds a custom metric to the collector
func (mc *MetricsCollector) AddCustomMetric(name string, metric prometheus.Collector) {
	mc.customMetrics[name] = metric
	mc.registry.MustRegister(metric)
}

// GetCounter creates a new counter metric
func (mc *MetricsCollector) GetCounter(name, help string) prometheus.Counter {
	counter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: mc.serviceName + "_" + name,
			Help: help,
		},
	)
	mc.AddCustomMetric(name, counter)
	return counter
}

// GetCounterVec creates a new labelled counter metric
func (mc *MetricsCollector) GetCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: mc.serviceName + "_" + name,
			Help: help,
		},
		labels,
	)
	mc.AddCustomMetric(name, counter)
	return counter
}

// GetGauge creates a new gauge metric
func (mc *MetricsCollector) GetGauge(name, help string) prometheus.Gauge {
	gauge := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: mc.serviceName + "_" + name,
			Help: help,
		},
	)
	mc.AddCustomMetric(name, gauge)
	return gauge
}
