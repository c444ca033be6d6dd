package app

import (
	"fmt"
	"log/slog"

	"climateapi.app/internal/adapters/cache"
	"climateapi.app/internal/adapters/database"
	"climateapi.app/internal/adapters/infrastructure"
	"climateapi.app/internal/config"
	"climateapi.app/internal/ports"
	"gorm.io/gorm"
)

type DependencyContainer struct {
	config *config.Config
	logger *slog.Logger
	db     *gorm.DB
	ports  *ports.ApplicationPorts
}

func NewDependencyContainer(cfg *config.Config, logger *slog.Logger) (*DependencyContainer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	container := &DependencyContainer{
		config: cfg,
		logger: logger,
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	c.logger.Info("Opening climate dataset...", "driver", c.config.Database.Driver)

	db, err := database.Open(c.config.Database, c.logger)
	if err != nil {
		return err
	}

	c.db = db
	c.logger.Info("Climate dataset opened successfully")
	return nil
}

func (c *DependencyContainer) initializePorts() error {
	repository := database.NewClimateRepositoryAdapter(c.db)
	logger := infrastructure.NewSlogLoggerAdapter(c.logger)
	configProvider := infrastructure.NewConfigProviderAdapter(c.config)

	cacheFactory := cache.NewCacheProviderFactory()
	cacheProvider, cacheMetrics, err := cacheFactory.CreateCacheProvider(&c.config.Cache)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}

	var climateCache ports.ClimateCache
	if cacheProvider != nil {
		climateCache = cache.NewClimateCacheAdapter(cacheProvider)
		c.logger.Info("Listing cache enabled",
			"type", c.config.Cache.Type.String(),
			"ttl_minutes", c.config.Cache.TTLMinutes)
	}

	c.ports = &ports.ApplicationPorts{
		ClimateRepository: repository,
		ClimateCache:      climateCache,

		CacheProvider: cacheProvider,
		CacheMetrics:  cacheMetrics,

		ConfigProvider: configProvider,
		Logger:         logger,
		Database:       c.db,
	}
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Cleanup closes the cache client and the database pool.
func (c *DependencyContainer) Cleanup() error {
	var firstErr error

	if c.ports != nil && c.ports.CacheProvider != nil {
		if closer, ok := c.ports.CacheProvider.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				firstErr = err
			}
		}
	}

	if err := database.Close(c.db); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
