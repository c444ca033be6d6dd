package mocks

import (
	"context"
	"time"

	"climateapi.app/internal/ports"
	"github.com/stretchr/testify/mock"
)

// ClimateRepository is a testify mock of ports.ClimateRepository.
type ClimateRepository struct {
	mock.Mock
}

// NewClimateRepository creates a mock that asserts its expectations at test cleanup.
func NewClimateRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ClimateRepository {
	m := &ClimateRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ClimateRepository) ListPrecipitation(ctx context.Context) ([]ports.PrecipitationData, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]ports.PrecipitationData)
	return rows, args.Error(1)
}

func (m *ClimateRepository) ListStations(ctx context.Context) ([]ports.StationData, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]ports.StationData)
	return rows, args.Error(1)
}

func (m *ClimateRepository) LatestMeasurementDate(ctx context.Context) (string, bool, error) {
	args := m.Called(ctx)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *ClimateRepository) MostActiveStation(ctx context.Context) (string, bool, error) {
	args := m.Called(ctx)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *ClimateRepository) ObservationsSince(ctx context.Context, station, cutoff string) ([]ports.ObservationData, error) {
	args := m.Called(ctx, station, cutoff)
	rows, _ := args.Get(0).([]ports.ObservationData)
	return rows, args.Error(1)
}

func (m *ClimateRepository) TemperatureStats(ctx context.Context, start, end string) (ports.TemperatureStatsData, error) {
	args := m.Called(ctx, start, end)
	stats, _ := args.Get(0).(ports.TemperatureStatsData)
	return stats, args.Error(1)
}

// ClimateCache is a testify mock of ports.ClimateCache.
type ClimateCache struct {
	mock.Mock
}

func NewClimateCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *ClimateCache {
	m := &ClimateCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ClimateCache) GetStations(ctx context.Context) ([]ports.StationData, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]ports.StationData)
	return rows, args.Error(1)
}

func (m *ClimateCache) SetStations(ctx context.Context, stations []ports.StationData, ttl time.Duration) error {
	return m.Called(ctx, stations, ttl).Error(0)
}

func (m *ClimateCache) GetPrecipitation(ctx context.Context) ([]ports.PrecipitationData, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]ports.PrecipitationData)
	return rows, args.Error(1)
}

func (m *ClimateCache) SetPrecipitation(ctx context.Context, rows []ports.PrecipitationData, ttl time.Duration) error {
	return m.Called(ctx, rows, ttl).Error(0)
}
