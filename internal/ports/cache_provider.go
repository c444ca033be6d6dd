package ports

import (
	"context"
	"time"
)

// CacheProvider defines the contract for caching operations
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
}

// CacheMetrics defines the contract for cache performance tracking
type CacheMetrics interface {
	GetStats() CacheStats
	RecordHit()
	RecordMiss()
	RecordOperation(operation string, duration time.Duration)
}

// CacheStats represents cache performance statistics
type CacheStats struct {
	Hits        int64
	Misses      int64
	TotalOps    int64
	HitRatio    float64
	LastUpdated time.Time
}

// ClimateCache stores the plain listings (stations, precipitation).
// Aggregates are never cached.
type ClimateCache interface {
	GetStations(ctx context.Context) ([]StationData, error)
	SetStations(ctx context.Context, stations []StationData, ttl time.Duration) error
	GetPrecipitation(ctx context.Context) ([]PrecipitationData, error)
	SetPrecipitation(ctx context.Context, rows []PrecipitationData, ttl time.Duration) error
}
