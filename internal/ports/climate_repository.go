package ports

import "context"

// StationData is one row of the station table.
type StationData struct {
	ID        int
	Station   string
	Name      string
	Latitude  float64
	Longitude float64
	Elevation float64
}

// PrecipitationData is a (date, prcp) pair; Value is nil when the reading is missing.
type PrecipitationData struct {
	Date  string
	Value *float64
}

// ObservationData is a (date, tobs) pair for a single station.
type ObservationData struct {
	Date        string
	Temperature float64
}

// TemperatureStatsData holds MIN/AVG/MAX of tobs. All three are nil when no rows matched.
type TemperatureStatsData struct {
	Minimum *float64
	Average *float64
	Maximum *float64
}

// ClimateRepository is the read-only query surface over the measurement and station tables.
type ClimateRepository interface {
	ListPrecipitation(ctx context.Context) ([]PrecipitationData, error)
	ListStations(ctx context.Context) ([]StationData, error)
	// LatestMeasurementDate returns false when the measurement table is empty.
	LatestMeasurementDate(ctx context.Context) (string, bool, error)
	// MostActiveStation returns the station code with the most measurements,
	// ties going to the lowest code. False when there are no measurements.
	MostActiveStation(ctx context.Context) (string, bool, error)
	ObservationsSince(ctx context.Context, station, cutoff string) ([]ObservationData, error)
	TemperatureStats(ctx context.Context, start, end string) (TemperatureStatsData, error)
}
