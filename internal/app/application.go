package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"climateapi.app/internal/adapters/api"
	"climateapi.app/internal/adapters/infrastructure"
	"climateapi.app/internal/config"
	"climateapi.app/internal/core/climate"
	"climateapi.app/internal/ports"
	"github.com/gin-gonic/gin"
)

type Application struct {
	config *config.Config
	logger *slog.Logger

	// Use Cases
	climateUseCase *climate.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	return NewApplicationWithConfig(cfg, slog.Default())
}

// NewApplicationWithConfig wires the application from an already loaded configuration
func NewApplicationWithConfig(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(cfg.Server.GinMode)
	displayer := NewConfigDisplayer(logger)
	displayer.LogEnvironment()
	displayer.LogConfig(cfg)

	deps, err := NewDependencyContainer(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, logger, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, logger *slog.Logger, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		logger: logger,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	climateUseCase, err := climate.NewUseCase(climate.UseCaseDependencies{
		Repository: a.ports.ClimateRepository,
		Cache:      a.ports.ClimateCache,
		Config:     a.ports.ConfigProvider,
		Logger:     a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create climate use case: %w", err)
	}
	a.climateUseCase = climateUseCase
	return nil
}

func (a *Application) initializeAdapters() error {
	cacheConfig := a.ports.ConfigProvider.GetCacheConfig()

	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		CacheMetrics: a.ports.CacheMetrics,
		CacheConfig:  cacheConfig,
	})

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker: infrastructure.NewDatabaseHealthChecker(a.ports.Database, a.ports.ConfigProvider.GetDatabaseConfig()),
		CacheChecker:    infrastructure.NewCacheHealthChecker(a.ports.CacheProvider, cacheConfig),
		ConfigProvider:  a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:        a.config.Server.Port,
			StrictDates: a.config.API.StrictDates,
		},
		ClimateUseCase:   a.climateUseCase,
		MetricsCollector: metricsCollector,
		HealthChecker:    systemHealthChecker,
		Logger:           a.logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()
	a.httpServer = &http.Server{
		Addr:         a.config.Server.Address(),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return nil
}

// Start serves HTTP until Shutdown is called.
func (a *Application) Start(ctx context.Context) error {
	a.logger.Info("Starting HTTP server", "addr", a.httpServer.Addr)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if a.deps != nil {
		if err := a.deps.Cleanup(); err != nil {
			a.logger.Warn("Error releasing resources", "error", err)
		}
	}

	a.logger.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

func (a *Application) GetClimateUseCase() *climate.UseCase {
	return a.climateUseCase
}
