// Package ports defines the interfaces between the climate core and its adapters.
// Test doubles live in internal/mocks.
package ports

import "gorm.io/gorm"

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Climate data
	ClimateRepository ClimateRepository
	ClimateCache      ClimateCache

	// Cache
	CacheProvider CacheProvider
	CacheMetrics  CacheMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Database       *gorm.DB
}
