package metrics

import (
	"sync"
	"time"

	"climateapi.app/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type CacheMetricsCollector struct {
	Hits     *prometheus.CounterVec
	Misses   *prometheus.CounterVec
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
	HitRatio *prometheus.GaugeVec
}

var (
	cacheCollector     *CacheMetricsCollector
	cacheCollectorOnce sync.Once
)

func getCacheCollector() *CacheMetricsCollector {
	cacheCollectorOnce.Do(func() {
		cacheCollector = &CacheMetricsCollector{
			Hits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "climate_cache_hits_total",
					Help: "The total number of listing cache hits",
				},
				[]string{"cache_type"},
			),
			Misses: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "climate_cache_misses_total",
					Help: "The total number of listing cache misses",
				},
				[]string{"cache_type"},
			),
			Requests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "climate_cache_requests_total",
					Help: "The total number of listing cache lookups",
				},
				[]string{"cache_type"},
			),
			Latency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "climate_cache_duration_seconds",
					Help:    "Cache operation duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"cache_type", "operation"},
			),
			HitRatio: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "climate_cache_hit_ratio",
					Help: "Cache hit ratio (hits/total lookups)",
				},
				[]string{"cache_type"},
			),
		}
	})
	return cacheCollector
}

// CacheMetrics counts hits and misses for one cache backend and mirrors
// them into the shared Prometheus collectors.
type CacheMetrics struct {
	cacheType string
	hits      int64
	misses    int64
	total     int64
	collector *CacheMetricsCollector
	mu        sync.RWMutex
}

var _ ports.CacheMetrics = (*CacheMetrics)(nil)

func NewCacheMetrics(cacheType string) *CacheMetrics {
	return &CacheMetrics{
		cacheType: cacheType,
		collector: getCacheCollector(),
	}
}

func (m *CacheMetrics) CacheType() string {
	return m.cacheType
}

func (m *CacheMetrics) RecordHit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hits++
	m.total++
	m.collector.Hits.WithLabelValues(m.cacheType).Inc()
	m.collector.Requests.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

func (m *CacheMetrics) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.misses++
	m.total++
	m.collector.Misses.WithLabelValues(m.cacheType).Inc()
	m.collector.Requests.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

// RecordOperation observes how long a get/set/delete took.
func (m *CacheMetrics) RecordOperation(operation string, duration time.Duration) {
	m.collector.Latency.WithLabelValues(m.cacheType, operation).Observe(duration.Seconds())
}

// updateHitRatio must be called while holding the mutex.
func (m *CacheMetrics) updateHitRatio() {
	if m.total > 0 {
		ratio := float64(m.hits) / float64(m.total)
		m.collector.HitRatio.WithLabelValues(m.cacheType).Set(ratio)
	}
}

func (m *CacheMetrics) GetStats() ports.CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var hitRatio float64
	if m.total > 0 {
		hitRatio = float64(m.hits) / float64(m.total)
	}

	return ports.CacheStats{
		Hits:        m.hits,
		Misses:      m.misses,
		TotalOps:    m.total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}
