package cache

import (
	"fmt"

	"climateapi.app/internal/config"
	"climateapi.app/internal/ports"
	"climateapi.app/metrics"
	"climateapi.app/pkg/errors"
)

type CacheProviderFactory struct{}

func NewCacheProviderFactory() *CacheProviderFactory {
	return &CacheProviderFactory{}
}

// CreateCacheProvider builds the backend named by cfg.Type. CACHE_TYPE=none
// yields a nil provider and nil metrics.
func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig) (ports.CacheProvider, ports.CacheMetrics, error) {
	if cfg == nil {
		return nil, nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	var provider ports.CacheProvider
	switch cfg.Type {
	case config.CacheTypeNone:
		return nil, nil, nil
	case config.CacheTypeMemory:
		provider = NewMemoryCacheProvider()
	case config.CacheTypeRedis:
		redisProvider, err := NewRedisCacheProvider(&cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		provider = redisProvider
	default:
		return nil, nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}

	cacheMetrics := metrics.NewCacheMetrics(cfg.Type.String())
	return NewInstrumentedCacheProvider(provider, cacheMetrics), cacheMetrics, nil
}
