package database

import (
	"context"
	"database/sql"
	stderrors "errors"

	"climateapi.app/internal/ports"
	"climateapi.app/pkg/errors"
	"gorm.io/gorm"
)

// ClimateRepositoryAdapter implements the ClimateRepository port using GORM.
// Every method starts its own session from the shared handle.
type ClimateRepositoryAdapter struct {
	db *gorm.DB
}

// NewClimateRepositoryAdapter creates a new climate repository adapter
func NewClimateRepositoryAdapter(db *gorm.DB) ports.ClimateRepository {
	return &ClimateRepositoryAdapter{db: db}
}

type precipitationRow struct {
	Date string
	Prcp *float64
}

type observationRow struct {
	Date string
	Tobs float64
}

// ListPrecipitation returns every (date, prcp) pair in insertion order.
func (r *ClimateRepositoryAdapter) ListPrecipitation(ctx context.Context) ([]ports.PrecipitationData, error) {
	var rows []precipitationRow
	result := r.db.WithContext(ctx).
		Model(&MeasurementModel{}).
		Select("date", "prcp").
		Order("id").
		Scan(&rows)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list precipitation", result.Error)
	}

	data := make([]ports.PrecipitationData, len(rows))
	for i, row := range rows {
		data[i] = ports.PrecipitationData{Date: row.Date, Value: row.Prcp}
	}
	return data, nil
}

// ListStations returns every station ordered by id.
func (r *ClimateRepositoryAdapter) ListStations(ctx context.Context) ([]ports.StationData, error) {
	var models []StationModel
	result := r.db.WithContext(ctx).Order("id").Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list stations", result.Error)
	}

	stations := make([]ports.StationData, len(models))
	for i, model := range models {
		stations[i] = r.stationToData(&model)
	}
	return stations, nil
}

// LatestMeasurementDate returns MAX(date) over all measurements.
func (r *ClimateRepositoryAdapter) LatestMeasurementDate(ctx context.Context) (string, bool, error) {
	var latest sql.NullString
	err := r.db.WithContext(ctx).
		Model(&MeasurementModel{}).
		Select("MAX(date)").
		Row().
		Scan(&latest)
	if err != nil {
		return "", false, errors.NewDatabaseError("failed to find latest measurement date", err)
	}

	return latest.String, latest.Valid, nil
}

// MostActiveStation returns the station with the highest measurement count.
// Equal counts resolve to the lowest station code.
func (r *ClimateRepositoryAdapter) MostActiveStation(ctx context.Context) (string, bool, error) {
	var (
		station string
		count   int64
	)
	err := r.db.WithContext(ctx).
		Model(&MeasurementModel{}).
		Select("station", "COUNT(*) AS observations").
		Group("station").
		Order("observations DESC, station ASC").
		Limit(1).
		Row().
		Scan(&station, &count)
	if stderrors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewDatabaseError("failed to find most active station", err)
	}

	return station, true, nil
}

// ObservationsSince returns (date, tobs) for station with date >= cutoff, oldest first.
func (r *ClimateRepositoryAdapter) ObservationsSince(ctx context.Context, station, cutoff string) ([]ports.ObservationData, error) {
	var rows []observationRow
	result := r.db.WithContext(ctx).
		Model(&MeasurementModel{}).
		Select("date", "tobs").
		Where("station = ? AND date >= ?", station, cutoff).
		Order("date").
		Scan(&rows)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list temperature observations", result.Error)
	}

	observations := make([]ports.ObservationData, len(rows))
	for i, row := range rows {
		observations[i] = ports.ObservationData{Date: row.Date, Temperature: row.Tobs}
	}
	return observations, nil
}

// TemperatureStats returns MIN/AVG/MAX of tobs for start <= date <= end.
// The aggregate row always exists; its columns are NULL when nothing matched.
func (r *ClimateRepositoryAdapter) TemperatureStats(ctx context.Context, start, end string) (ports.TemperatureStatsData, error) {
	var minimum, average, maximum sql.NullFloat64
	err := r.db.WithContext(ctx).
		Model(&MeasurementModel{}).
		Select("MIN(tobs)", "AVG(tobs)", "MAX(tobs)").
		Where("date >= ? AND date <= ?", start, end).
		Row().
		Scan(&minimum, &average, &maximum)
	if err != nil {
		return ports.TemperatureStatsData{}, errors.NewDatabaseError("failed to compute temperature stats", err)
	}

	return ports.TemperatureStatsData{
		Minimum: nullableFloat(minimum),
		Average: nullableFloat(average),
		Maximum: nullableFloat(maximum),
	}, nil
}

func (r *ClimateRepositoryAdapter) stationToData(model *StationModel) ports.StationData {
	return ports.StationData{
		ID:        model.ID,
		Station:   model.Station,
		Name:      model.Name,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Elevation: model.Elevation,
	}
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
