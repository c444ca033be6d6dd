package infrastructure

import (
	"context"

	"climateapi.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	databaseChecker ports.HealthChecker
	cacheChecker    ports.HealthChecker
	configProvider  ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker ports.HealthChecker
	CacheChecker    ports.HealthChecker
	ConfigProvider  ports.ConfigProvider
}

func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		databaseChecker: config.DatabaseChecker,
		cacheChecker:    config.CacheChecker,
		configProvider:  config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.databaseChecker != nil {
		results["database"] = s.databaseChecker.Check(ctx)
	}

	if s.cacheChecker != nil {
		results["cache"] = s.cacheChecker.Check(ctx)
	}

	if s.configProvider != nil {
		db := s.configProvider.GetDatabaseConfig()
		api := s.configProvider.GetAPIConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    ports.StatusHealthy,
			Details: map[string]interface{}{
				"driver":      db.Driver,
				"strictDates": api.StrictDates,
			},
		}
	}

	return results
}

// IsHealthy reports whether no component is unhealthy. Disabled components
// do not count against the system.
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status == ports.StatusUnhealthy {
			return false
		}
	}
	return true
}
