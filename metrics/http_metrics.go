package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetricsCollector holds the request counters, labelled by route template
// so that /api/v1.0/:start does not explode into one series per date.
type HTTPMetricsCollector struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

var (
	httpCollector     *HTTPMetricsCollector
	httpCollectorOnce sync.Once
)

// HTTP returns the process-wide HTTP collector.
func HTTP() *HTTPMetricsCollector {
	httpCollectorOnce.Do(func() {
		httpCollector = &HTTPMetricsCollector{
			Requests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "climate_http_requests_total",
					Help: "The total number of HTTP requests served",
				},
				[]string{"method", "route", "status"},
			),
			Duration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "climate_http_request_duration_seconds",
					Help:    "HTTP request latency in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "route"},
			),
		}
	})
	return httpCollector
}

func (c *HTTPMetricsCollector) Observe(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	c.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.Duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
