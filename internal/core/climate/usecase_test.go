package climate

import (
	"context"
	"testing"
	"time"

	"climateapi.app/internal/mocks"
	"climateapi.app/internal/ports"
	"climateapi.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, cacheCfg ports.CacheConfig, cache ports.ClimateCache) (*UseCase, *mocks.ClimateRepository, *mocks.Logger) {
	t.Helper()

	repo := mocks.NewClimateRepository(t)
	logger := &mocks.Logger{}

	uc, err := NewUseCase(UseCaseDependencies{
		Repository: repo,
		Cache:      cache,
		Config:     &mocks.ConfigProvider{Cache: cacheCfg},
		Logger:     logger,
		Clock:      func() time.Time { return fixedNow },
	})
	require.NoError(t, err)

	return uc, repo, logger
}

func TestNewUseCase_RequiresDependencies(t *testing.T) {
	tests := []struct {
		name string
		deps UseCaseDependencies
		msg  string
	}{
		{
			name: "MissingRepository",
			deps: UseCaseDependencies{Config: &mocks.ConfigProvider{}, Logger: &mocks.Logger{}},
			msg:  "climate repository is required",
		},
		{
			name: "MissingConfig",
			deps: UseCaseDependencies{Repository: &mocks.ClimateRepository{}, Logger: &mocks.Logger{}},
			msg:  "config is required",
		},
		{
			name: "MissingLogger",
			deps: UseCaseDependencies{Repository: &mocks.ClimateRepository{}, Config: &mocks.ConfigProvider{}},
			msg:  "logger is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, err := NewUseCase(tt.deps)
			assert.Nil(t, uc)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestUseCase_Precipitation_LastWriteWins(t *testing.T) {
	uc, repo, _ := newTestUseCase(t, ports.CacheConfig{}, nil)

	repo.On("ListPrecipitation", mock.Anything).Return([]ports.PrecipitationData{
		{Date: "2017-08-22", Value: ptr(0.5)},
		{Date: "2017-08-23", Value: ptr(0.0)},
		{Date: "2017-08-23", Value: nil},
		{Date: "2017-08-23", Value: ptr(0.45)},
	}, nil)

	result, err := uc.Precipitation(context.Background())
	require.NoError(t, err)

	assert.Len(t, result, 2)
	require.NotNil(t, result["2017-08-23"])
	assert.Equal(t, 0.45, *result["2017-08-23"])
	assert.Equal(t, 0.5, *result["2017-08-22"])
}

func TestUseCase_Precipitation_KeepsNulls(t *testing.T) {
	uc, repo, _ := newTestUseCase(t, ports.CacheConfig{}, nil)

	repo.On("ListPrecipitation", mock.Anything).Return([]ports.PrecipitationData{
		{Date: "2010-01-01", Value: nil},
	}, nil)

	result, err := uc.Precipitation(context.Background())
	require.NoError(t, err)

	value, ok := result["2010-01-01"]
	assert.True(t, ok)
	assert.Nil(t, value)
}

func TestUseCase_Precipitation_RepositoryError(t *testing.T) {
	uc, repo, _ := newTestUseCase(t, ports.CacheConfig{}, nil)

	repo.On("ListPrecipitation", mock.Anything).Return(nil, errors.NewDatabaseError("query failed", nil))

	result, err := uc.Precipitation(context.Background())
	assert.Nil(t, result)
	assert.True(t, errors.IsDatabaseError(err))
}

func TestUseCase_Stations(t *testing.T) {
	uc, repo, _ := newTestUseCase(t, ports.CacheConfig{}, nil)

	repo.On("ListStations", mock.Anything).Return([]ports.StationData{
		{ID: 1, Station: "USC00519397", Name: "WAIKIKI 717.2, HI US", Latitude: 21.2716, Longitude: -157.8168, Elevation: 3},
		{ID: 2, Station: "USC00513117", Name: "KANEOHE 838.1, HI US", Latitude: 21.4234, Longitude: -157.8015, Elevation: 14.6},
	}, nil)

	stations, err := uc.Stations(context.Background())
	require.NoError(t, err)

	require.Len(t, stations, 2)
	assert.Equal(t, Station{ID: 1, Code: "USC00519397", Name: "WAIKIKI 717.2, HI US", Latitude: 21.2716, Longitude: -157.8168, Elevation: 3}, stations[0])
	assert.Equal(t, "USC00513117", stations[1].Code)
}

func TestUseCase_Stations_FromCache(t *testing.T) {
	cache := mocks.NewClimateCache(t)
	uc, _, logger := newTestUseCase(t, ports.CacheConfig{Type: "memory", Enabled: true, TTL: time.Hour}, cache)

	cache.On("GetStations", mock.Anything).Return([]ports.StationData{{ID: 7, Station: "USC00519281"}}, nil)

	stations, err := uc.Stations(context.Background())
	require.NoError(t, err)

	require.Len(t, stations, 1)
	assert.Equal(t, "USC00519281", stations[0].Code)
	assert.True(t, logger.HasMessage("DEBUG", "Stations found in cache"))
}

func TestUseCase_Stations_CacheMissPopulatesCache(t *testing.T) {
	cache := mocks.NewClimateCache(t)
	uc, repo, _ := newTestUseCase(t, ports.CacheConfig{Type: "memory", Enabled: true, TTL: time.Hour}, cache)

	rows := []ports.StationData{{ID: 1, Station: "USC00519397"}}
	cache.On("GetStations", mock.Anything).Return(nil, errors.NewNotFoundError("cache miss"))
	repo.On("ListStations", mock.Anything).Return(rows, nil)
	cache.On("SetStations", mock.Anything, rows, time.Hour).Return(nil)

	stations, err := uc.Stations(context.Background())
	require.NoError(t, err)
	assert.Len(t, stations, 1)
}

func TestUseCase_Precipitation_CacheWriteFailureIsLogged(t *testing.T) {
	cache := mocks.NewClimateCache(t)
	uc, repo, logger := newTestUseCase(t, ports.CacheConfig{Type: "redis", Enabled: true, TTL: time.Minute}, cache)

	rows := []ports.PrecipitationData{{Date: "2017-08-23", Value: ptr(0.1)}}
	cache.On("GetPrecipitation", mock.Anything).Return(nil, errors.NewNotFoundError("cache miss"))
	repo.On("ListPrecipitation", mock.Anything).Return(rows, nil)
	cache.On("SetPrecipitation", mock.Anything, rows, time.Minute).Return(errors.NewCacheError("redis down", nil))

	result, err := uc.Precipitation(context.Background())
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.True(t, logger.HasMessage("WARN", "Failed to cache precipitation"))
}

func TestUseCase_Stations_CacheDisabledSkipsCache(t *testing.T) {
	cache := mocks.NewClimateCache(t)
	uc, repo, _ := newTestUseCase(t, ports.CacheConfig{Type: "none"}, cache)

	repo.On("ListStations", mock.Anything).Return([]ports.StationData{}, nil)

	stations, err := uc.Stations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stations)
	cache.AssertNotCalled(t, "GetStations", mock.Anything)
}

func TestUseCase_TemperatureObservations(t *testing.T) {
	uc, repo, _ := newTestUseCase(t, ports.CacheConfig{}, nil)

	repo.On("LatestMeasurementDate", mock.Anything).Return("2017-08-23", true, nil)
	repo.On("MostActiveStation", mock.Anything).Return("USC00519281", true, nil)
	repo.On("ObservationsSince", mock.Anything, "USC00519281", "2016-08-23").Return([]ports.ObservationData{
		{Date: "2016-08-23", Temperature: 77},
		{Date: "2017-08-18", Temperature: 79},
	}, nil)

	result, err := uc.TemperatureObservations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"2016-08-23", 77.0, "2017-08-18", 79.0}, result)
}

func TestUseCase_TemperatureObservations_LeapDayCutoff(t *testing.T) {
	uc, repo, _ := newTestUseCase(t, ports.CacheConfig{}, nil)

	repo.On("LatestMeasurementDate", mock.Anything).Return("2016-02-29", true, nil)
	repo.On("MostActiveStation", mock.Anything).Return("USC00513117", true, nil)
	repo.On("ObservationsSince", mock.Anything, "USC00513117", "2015-02-28").Return([]ports.ObservationData{}, nil)

	result, err := uc.TemperatureObservations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestUseCase_TemperatureObservations_EmptyDataset(t *testing.T) {
	uc, repo, logger := newTestUseCase(t, ports.CacheConfig{}, nil)

	repo.On("LatestMeasurementDate", mock.Anything).Return("", false, nil)

	result, err := uc.TemperatureObservations(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
	assert.True(t, logger.HasMessage("WARN", "No measurements available for temperature observations"))
}

func TestUseCase_TemperatureObservations_MalformedLatestDate(t *testing.T) {
	uc, repo, _ := newTestUseCase(t, ports.CacheConfig{}, nil)

	repo.On("LatestMeasurementDate", mock.Anything).Return("08/23/2017", true, nil)

	result, err := uc.TemperatureObservations(context.Background())
	assert.Nil(t, result)
	assert.True(t, errors.IsDatabaseError(err))
}

func TestUseCase_TemperatureRange_ExplicitEnd(t *testing.T) {
	uc, repo, _ := newTestUseCase(t, ports.CacheConfig{}, nil)

	end := "2017-01-01"
	repo.On("TemperatureStats", mock.Anything, "2017-01-01", "2017-01-01").Return(ports.TemperatureStatsData{
		Minimum: ptr(70), Average: ptr(70), Maximum: ptr(70),
	}, nil)

	summary, err := uc.TemperatureRange(context.Background(), TemperatureRangeRequest{Start: "2017-01-01", End: &end})
	require.NoError(t, err)

	assert.Equal(t, 70.0, *summary.Minimum)
	assert.Equal(t, 70.0, *summary.Average)
	assert.Equal(t, 70.0, *summary.Maximum)
	assert.True(t, summary.IsOrdered())
}

func TestUseCase_TemperatureRange_DefaultsEndToToday(t *testing.T) {
	uc, repo, _ := newTestUseCase(t, ports.CacheConfig{}, nil)

	repo.On("TemperatureStats", mock.Anything, "2017-08-01", "2026-10-16").Return(ports.TemperatureStatsData{
		Minimum: ptr(71), Average: ptr(78.2), Maximum: ptr(84),
	}, nil)

	summary, err := uc.TemperatureRange(context.Background(), TemperatureRangeRequest{Start: "2017-08-01"})
	require.NoError(t, err)
	assert.True(t, summary.IsOrdered())
}

func TestUseCase_TemperatureRange_NoRows(t *testing.T) {
	uc, repo, _ := newTestUseCase(t, ports.CacheConfig{}, nil)

	end := "1999-01-02"
	repo.On("TemperatureStats", mock.Anything, "1999-01-01", "1999-01-02").Return(ports.TemperatureStatsData{}, nil)

	summary, err := uc.TemperatureRange(context.Background(), TemperatureRangeRequest{Start: "1999-01-01", End: &end})
	require.NoError(t, err)
	assert.True(t, summary.IsEmpty())
}

func TestUseCase_TemperatureRange_PassesMalformedDatesThrough(t *testing.T) {
	uc, repo, _ := newTestUseCase(t, ports.CacheConfig{}, nil)

	end := "yesterday"
	repo.On("TemperatureStats", mock.Anything, "not-a-date", "yesterday").Return(ports.TemperatureStatsData{}, nil)

	summary, err := uc.TemperatureRange(context.Background(), TemperatureRangeRequest{Start: "not-a-date", End: &end})
	require.NoError(t, err)
	assert.True(t, summary.IsEmpty())
}
