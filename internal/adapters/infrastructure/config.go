package infrastructure

import (
	"time"

	"climateapi.app/internal/config"
	"climateapi.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetDatabaseConfig returns the database settings without credentials
func (c *ConfigProviderAdapter) GetDatabaseConfig() ports.DatabaseConfig {
	db := ports.DatabaseConfig{Driver: c.config.Database.Driver}
	if db.Driver == config.DriverSQLite {
		db.Path = c.config.Database.Path
	} else {
		db.Host = c.config.Database.Host
		db.Name = c.config.Database.Name
	}
	return db
}

func (c *ConfigProviderAdapter) GetAPIConfig() ports.APIConfig {
	return ports.APIConfig{
		StrictDates: c.config.API.StrictDates,
	}
}

// GetCacheConfig returns listing cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type:    c.config.Cache.Type.String(),
		Enabled: c.config.Cache.Type.Enabled(),
		TTL:     time.Duration(c.config.Cache.TTLMinutes) * time.Minute,
	}
}
