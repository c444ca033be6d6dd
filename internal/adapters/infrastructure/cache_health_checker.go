package infrastructure

import (
	"context"
	"time"

	"climateapi.app/internal/ports"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker reports the listing cache state. A disabled cache is
// reported as such rather than as a failure.
type CacheHealthChecker struct {
	provider ports.CacheProvider
	config   ports.CacheConfig
}

func NewCacheHealthChecker(provider ports.CacheProvider, config ports.CacheConfig) *CacheHealthChecker {
	return &CacheHealthChecker{provider: provider, config: config}
}

func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Details: map[string]interface{}{
			"type": c.config.Type,
		},
	}

	if !c.config.Enabled || c.provider == nil {
		status.Status = ports.StatusDisabled
		return status
	}

	status.Details["ttl"] = c.config.TTL.String()

	if p, ok := c.provider.(pinger); ok {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		if err := p.Ping(ctx); err != nil {
			status.Status = ports.StatusUnhealthy
			status.Error = err.Error()
			return status
		}
	}

	status.Status = ports.StatusHealthy
	return status
}
