// Package dbtest builds small SQLite climate datasets for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"climateapi.app/internal/adapters/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Stations is the station table used by most tests.
func Stations() []database.StationModel {
	return []database.StationModel{
		{ID: 1, Station: "USC00519397", Name: "WAIKIKI 717.2, HI US", Latitude: 21.2716, Longitude: -157.8168, Elevation: 3.0},
		{ID: 2, Station: "USC00513117", Name: "KANEOHE 838.1, HI US", Latitude: 21.4234, Longitude: -157.8015, Elevation: 14.6},
		{ID: 3, Station: "USC00519281", Name: "WAIHEE 837.5, HI US", Latitude: 21.45167, Longitude: -157.84889, Elevation: 32.9},
	}
}

// Measurements is the measurement table used by most tests. The latest date
// is 2017-08-23 and USC00519281 reports most often.
func Measurements() []database.MeasurementModel {
	return []database.MeasurementModel{
		{ID: 1, Station: "USC00519397", Date: "2016-08-23", Prcp: Float(0.0), Tobs: 81},
		{ID: 2, Station: "USC00519397", Date: "2017-08-23", Prcp: Float(0.0), Tobs: 81},
		{ID: 3, Station: "USC00513117", Date: "2017-08-23", Prcp: Float(0.45), Tobs: 82},
		{ID: 4, Station: "USC00519281", Date: "2016-08-22", Prcp: Float(0.1), Tobs: 76},
		{ID: 5, Station: "USC00519281", Date: "2016-08-23", Prcp: nil, Tobs: 77},
		{ID: 6, Station: "USC00519281", Date: "2017-01-01", Prcp: Float(0.02), Tobs: 70},
		{ID: 7, Station: "USC00519281", Date: "2017-08-18", Prcp: Float(0.06), Tobs: 79},
	}
}

// NewFile creates an empty, migrated SQLite file under t.TempDir and returns
// a writable handle plus the file path.
func NewFile(t testing.TB) (*gorm.DB, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hawaii.sqlite")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&database.StationModel{}, &database.MeasurementModel{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db, path
}

// Seed inserts stations and measurements into db.
func Seed(t testing.TB, db *gorm.DB, stations []database.StationModel, measurements []database.MeasurementModel) {
	t.Helper()

	if len(stations) > 0 {
		require.NoError(t, db.Create(&stations).Error)
	}
	if len(measurements) > 0 {
		require.NoError(t, db.Create(&measurements).Error)
	}
}

// NewSeeded returns a handle on a file seeded with Stations and Measurements.
func NewSeeded(t testing.TB) (*gorm.DB, string) {
	t.Helper()

	db, path := NewFile(t)
	Seed(t, db, Stations(), Measurements())
	return db, path
}
