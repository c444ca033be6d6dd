package cache

import (
	"context"
	"encoding/json"
	"time"

	"climateapi.app/internal/ports"
	"climateapi.app/pkg/errors"
)

const (
	KeyPrefix        = "climate:"
	StationsKey      = KeyPrefix + "stations"
	PrecipitationKey = KeyPrefix + "precipitation"
)

// ClimateCacheAdapter stores the station and precipitation listings as JSON
// in a generic CacheProvider.
type ClimateCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

func NewClimateCacheAdapter(cacheProvider ports.CacheProvider) ports.ClimateCache {
	return &ClimateCacheAdapter{cacheProvider: cacheProvider}
}

func (c *ClimateCacheAdapter) GetStations(ctx context.Context) ([]ports.StationData, error) {
	var stations []ports.StationData
	if err := c.get(ctx, StationsKey, &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

func (c *ClimateCacheAdapter) SetStations(ctx context.Context, stations []ports.StationData, ttl time.Duration) error {
	if stations == nil {
		return errors.NewValidationError("stations cannot be nil")
	}
	return c.set(ctx, StationsKey, stations, ttl)
}

func (c *ClimateCacheAdapter) GetPrecipitation(ctx context.Context) ([]ports.PrecipitationData, error) {
	var rows []ports.PrecipitationData
	if err := c.get(ctx, PrecipitationKey, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *ClimateCacheAdapter) SetPrecipitation(ctx context.Context, rows []ports.PrecipitationData, ttl time.Duration) error {
	if rows == nil {
		return errors.NewValidationError("precipitation rows cannot be nil")
	}
	return c.set(ctx, PrecipitationKey, rows, ttl)
}

func (c *ClimateCacheAdapter) get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.cacheProvider.Get(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return errors.NewCacheError("failed to deserialize "+key, err)
	}
	return nil
}

func (c *ClimateCacheAdapter) set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.NewCacheError("failed to serialize "+key, err)
	}
	return c.cacheProvider.Set(ctx, key, data, ttl)
}
