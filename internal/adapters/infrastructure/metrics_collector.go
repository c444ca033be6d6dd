package infrastructure

import (
	"context"

	"climateapi.app/internal/ports"
)

// MetricsCollectorAdapter exposes cache statistics for /api/metrics
type MetricsCollectorAdapter struct {
	cacheMetrics ports.CacheMetrics
	cacheConfig  ports.CacheConfig
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	CacheMetrics ports.CacheMetrics
	CacheConfig  ports.CacheConfig
}

func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		cacheMetrics: config.CacheMetrics,
		cacheConfig:  config.CacheConfig,
	}
}

// GetMetrics returns the cache section of the metrics report
func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	cache := map[string]interface{}{
		"type":    m.cacheConfig.Type,
		"enabled": m.cacheConfig.Enabled,
	}

	if m.cacheMetrics != nil {
		stats := m.cacheMetrics.GetStats()
		cache["hits"] = stats.Hits
		cache["misses"] = stats.Misses
		cache["total_ops"] = stats.TotalOps
		cache["hit_ratio"] = stats.HitRatio
		cache["updated"] = stats.LastUpdated
	}

	return map[string]interface{}{"cache": cache}, nil
}
