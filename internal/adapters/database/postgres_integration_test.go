//go:build integration

package database_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"climateapi.app/internal/adapters/database"
	"climateapi.app/internal/adapters/database/dbtest"
	"climateapi.app/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) config.DatabaseConfig {
	t.Helper()
	ctx := context.Background()

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "hawaii",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return config.DatabaseConfig{
		Driver:   config.DriverPostgres,
		Host:     host,
		Port:     port.Int(),
		User:     "postgres",
		Password: "postgres",
		Name:     "hawaii",
		SSLMode:  "disable",
	}
}

func TestClimateRepository_Postgres(t *testing.T) {
	cfg := startPostgres(t)

	db, err := database.Open(cfg, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, db.AutoMigrate(&database.StationModel{}, &database.MeasurementModel{}))
	dbtest.Seed(t, db, dbtest.Stations(), dbtest.Measurements())

	repo := database.NewClimateRepositoryAdapter(db)
	ctx := context.Background()

	latest, ok, err := repo.LatestMeasurementDate(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2017-08-23", latest)

	station, ok, err := repo.MostActiveStation(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "USC00519281", station)

	rows, err := repo.ObservationsSince(ctx, station, "2016-08-23")
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	stats, err := repo.TemperatureStats(ctx, "2016-08-23", "2017-08-23")
	require.NoError(t, err)
	require.NotNil(t, stats.Average)
	assert.InDelta(t, 470.0/6.0, *stats.Average, 1e-6)

	stats, err = repo.TemperatureStats(ctx, "1999-01-01", "1999-12-31")
	require.NoError(t, err)
	assert.Nil(t, stats.Minimum)
}
