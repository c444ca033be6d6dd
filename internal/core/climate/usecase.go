package climate

import (
	"context"
	"fmt"
	"time"

	"climateapi.app/internal/ports"
	"climateapi.app/pkg/errors"
)

type UseCase struct {
	repository ports.ClimateRepository
	cache      ports.ClimateCache
	config     ports.ConfigProvider
	logger     ports.Logger
	clock      func() time.Time
}

type UseCaseDependencies struct {
	Repository ports.ClimateRepository
	// Cache is optional; listings go straight to the repository without it.
	Cache  ports.ClimateCache
	Config ports.ConfigProvider
	Logger ports.Logger
	Clock  func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("climate repository is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &UseCase{
		repository: deps.Repository,
		cache:      deps.Cache,
		config:     deps.Config,
		logger:     deps.Logger,
		clock:      clock,
	}, nil
}

// Precipitation maps every measurement date to its precipitation value.
// Rows sharing a date overwrite each other in repository order.
func (uc *UseCase) Precipitation(ctx context.Context) (map[string]*float64, error) {
	rows, err := uc.precipitationWithCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("list precipitation: %w", err)
	}

	result := make(map[string]*float64, len(rows))
	for _, row := range rows {
		result[row.Date] = row.Value
	}

	uc.logger.Debug("Precipitation listed",
		ports.F("rows", len(rows)),
		ports.F("dates", len(result)))
	return result, nil
}

// Stations lists every station ordered by id.
func (uc *UseCase) Stations(ctx context.Context) ([]Station, error) {
	rows, err := uc.stationsWithCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}

	stations := make([]Station, len(rows))
	for i, row := range rows {
		stations[i] = Station{
			ID:        row.ID,
			Code:      row.Station,
			Name:      row.Name,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			Elevation: row.Elevation,
		}
	}
	return stations, nil
}

// TemperatureObservations returns the trailing 12 months of tobs for the most
// active station as a flat [date, tobs, ...] sequence.
func (uc *UseCase) TemperatureObservations(ctx context.Context) ([]interface{}, error) {
	latest, ok, err := uc.repository.LatestMeasurementDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("find latest measurement date: %w", err)
	}
	if !ok {
		uc.logger.Warn("No measurements available for temperature observations")
		return []interface{}{}, nil
	}

	cutoff, err := ObservationCutoff(latest)
	if err != nil {
		return nil, errors.Wrap(errors.DatabaseError, "latest measurement date is not YYYY-MM-DD", err)
	}

	station, ok, err := uc.repository.MostActiveStation(ctx)
	if err != nil {
		return nil, fmt.Errorf("find most active station: %w", err)
	}
	if !ok {
		return []interface{}{}, nil
	}

	rows, err := uc.repository.ObservationsSince(ctx, station, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list observations for station %s: %w", station, err)
	}

	observations := make([]Observation, len(rows))
	for i, row := range rows {
		observations[i] = Observation{Date: row.Date, Temperature: row.Temperature}
	}

	uc.logger.Debug("Temperature observations resolved",
		ports.F("station", station),
		ports.F("latest", latest),
		ports.F("cutoff", cutoff),
		ports.F("count", len(observations)))
	return FlattenObservations(observations), nil
}

// TemperatureRange summarizes tobs over start <= date <= end. Dates are not
// validated here; a window with no rows yields an empty summary.
func (uc *UseCase) TemperatureRange(ctx context.Context, request TemperatureRangeRequest) (TemperatureSummary, error) {
	request.Normalize()
	end := request.ResolveEnd(uc.clock())

	stats, err := uc.repository.TemperatureStats(ctx, request.Start, end)
	if err != nil {
		return TemperatureSummary{}, fmt.Errorf("temperature stats %s..%s: %w", request.Start, end, err)
	}

	summary := TemperatureSummary{
		Minimum: stats.Minimum,
		Average: stats.Average,
		Maximum: stats.Maximum,
	}

	if summary.IsEmpty() {
		uc.logger.Debug("Temperature range matched no measurements",
			ports.F("start", request.Start),
			ports.F("end", end))
	}
	return summary, nil
}

func (uc *UseCase) stationsWithCache(ctx context.Context) ([]ports.StationData, error) {
	cacheCfg := uc.config.GetCacheConfig()
	if uc.cache == nil || !cacheCfg.Enabled {
		return uc.repository.ListStations(ctx)
	}

	if cached, err := uc.cache.GetStations(ctx); err == nil && cached != nil {
		uc.logger.Debug("Stations found in cache", ports.F("count", len(cached)))
		return cached, nil
	}

	rows, err := uc.repository.ListStations(ctx)
	if err != nil {
		return nil, err
	}

	if cacheErr := uc.cache.SetStations(ctx, rows, cacheCfg.TTL); cacheErr != nil {
		uc.logger.Warn("Failed to cache stations", ports.F("error", cacheErr))
	}
	return rows, nil
}

func (uc *UseCase) precipitationWithCache(ctx context.Context) ([]ports.PrecipitationData, error) {
	cacheCfg := uc.config.GetCacheConfig()
	if uc.cache == nil || !cacheCfg.Enabled {
		return uc.repository.ListPrecipitation(ctx)
	}

	if cached, err := uc.cache.GetPrecipitation(ctx); err == nil && cached != nil {
		uc.logger.Debug("Precipitation found in cache", ports.F("rows", len(cached)))
		return cached, nil
	}

	rows, err := uc.repository.ListPrecipitation(ctx)
	if err != nil {
		return nil, err
	}

	if cacheErr := uc.cache.SetPrecipitation(ctx, rows, cacheCfg.TTL); cacheErr != nil {
		uc.logger.Warn("Failed to cache precipitation", ports.F("error", cacheErr))
	}
	return rows, nil
}
