package cache

import (
	"context"
	"time"

	"climateapi.app/internal/ports"
	"climateapi.app/pkg/errors"
)

// InstrumentedCacheProvider records hits, misses and operation latency for
// the wrapped provider.
type InstrumentedCacheProvider struct {
	provider ports.CacheProvider
	metrics  ports.CacheMetrics
}

func NewInstrumentedCacheProvider(provider ports.CacheProvider, metrics ports.CacheMetrics) *InstrumentedCacheProvider {
	return &InstrumentedCacheProvider{
		provider: provider,
		metrics:  metrics,
	}
}

func (p *InstrumentedCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	value, err := p.provider.Get(ctx, key)
	p.metrics.RecordOperation("get", time.Since(start))

	switch {
	case err == nil:
		p.metrics.RecordHit()
	case errors.IsNotFoundError(err):
		p.metrics.RecordMiss()
	}
	return value, err
}

func (p *InstrumentedCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	start := time.Now()
	err := p.provider.Set(ctx, key, value, ttl)
	p.metrics.RecordOperation("set", time.Since(start))
	return err
}

func (p *InstrumentedCacheProvider) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := p.provider.Delete(ctx, key)
	p.metrics.RecordOperation("delete", time.Since(start))
	return err
}

func (p *InstrumentedCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	return p.provider.Exists(ctx, key)
}

func (p *InstrumentedCacheProvider) Clear(ctx context.Context) error {
	return p.provider.Clear(ctx)
}

// Ping forwards to the wrapped provider when it supports it.
func (p *InstrumentedCacheProvider) Ping(ctx context.Context) error {
	if pinger, ok := p.provider.(interface{ Ping(context.Context) error }); ok {
		return pinger.Ping(ctx)
	}
	return nil
}

// Close forwards to the wrapped provider when it supports it.
func (p *InstrumentedCacheProvider) Close() error {
	if closer, ok := p.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
