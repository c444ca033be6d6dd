// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"climateapi.app/internal/core/climate"
	"climateapi.app/internal/ports"
	"climateapi.app/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port        int
	StrictDates bool
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	climateUseCase   ClimateUseCase
	metricsCollector MetricsCollector
	healthChecker    ports.SystemHealthChecker
	logger           *slog.Logger
}

// ClimateUseCase is what the HTTP adapter needs from the climate core
type ClimateUseCase interface {
	Precipitation(ctx context.Context) (map[string]*float64, error)
	Stations(ctx context.Context) ([]climate.Station, error)
	TemperatureObservations(ctx context.Context) ([]interface{}, error)
	TemperatureRange(ctx context.Context, request climate.TemperatureRangeRequest) (climate.TemperatureSummary, error)
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	ClimateUseCase   ClimateUseCase
	MetricsCollector MetricsCollector
	HealthChecker    ports.SystemHealthChecker
	Logger           *slog.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if opts.Config.StrictDates {
		if err := RegisterValidators(); err != nil {
			return nil, fmt.Errorf("register validators: %w", err)
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(logger),
		requestMetrics(),
	)

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		climateUseCase:   opts.ClimateUseCase,
		metricsCollector: opts.MetricsCollector,
		healthChecker:    opts.HealthChecker,
		logger:           logger,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.ClimateUseCase == nil {
		return errors.NewValidationError("climate use case is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.GET("/", s.getIndex)

	v1 := s.router.Group("/api/v1.0")
	{
		v1.GET("/precipitation", s.getPrecipitation)
		v1.GET("/stations", s.getStations)
		v1.GET("/tobs", s.getTemperatureObservations)
		v1.GET("/:start", s.getTemperatureRange)
		v1.GET("/:start/:end", s.getTemperatureRange)
	}

	api := s.router.Group("/api")
	{
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	})
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
