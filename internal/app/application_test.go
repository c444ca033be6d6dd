package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"climateapi.app/internal/adapters/database/dbtest"
	"climateapi.app/internal/config"
	"climateapi.app/internal/ports"
	"climateapi.app/pkg/errors"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, path string) *config.Config {
	t.Helper()

	t.Setenv("DB_PATH", path)
	t.Setenv("GIN_MODE", "test")
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	return cfg
}

func serve(app *Application, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	app.GetRouter().ServeHTTP(w, req)
	return w
}

func TestNewApplication_ServesSeededDataset(t *testing.T) {
	_, path := dbtest.NewSeeded(t)
	cfg := testConfig(t, path)

	app, err := NewApplicationWithConfig(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown(context.Background()) })

	w := serve(app, "/api/v1.0/stations")
	require.Equal(t, http.StatusOK, w.Code)
	var stations []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stations))
	assert.Len(t, stations, 3)

	w = serve(app, "/api/v1.0/tobs")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["2016-08-23",77,"2017-01-01",70,"2017-08-18",79]`, w.Body.String())

	w = serve(app, "/api/v1.0/2017-01-01/2017-01-01")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"Minimum":70,"Average":70,"Maximum":70}`, w.Body.String())

	w = serve(app, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)
	var health struct {
		Status     string                        `json:"status"`
		Components map[string]ports.HealthStatus `json:"components"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, ports.StatusHealthy, health.Components["database"].Status)
	assert.Equal(t, ports.StatusDisabled, health.Components["cache"].Status)
}

func TestNewApplication_MissingDatasetFailsFast(t *testing.T) {
	cfg := testConfig(t, t.TempDir()+"/missing.sqlite")

	app, err := NewApplicationWithConfig(cfg, nil)
	assert.Nil(t, app)
	require.Error(t, err)
	assert.True(t, errors.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "database file not found")
}

func TestNewApplication_RedisListingCache(t *testing.T) {
	_, path := dbtest.NewSeeded(t)
	mockRedis := miniredis.RunT(t)

	t.Setenv("CACHE_TYPE", "redis")
	t.Setenv("REDIS_ADDR", mockRedis.Addr())
	cfg := testConfig(t, path)

	app, err := NewApplicationWithConfig(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown(context.Background()) })

	first := serve(app, "/api/v1.0/precipitation")
	require.Equal(t, http.StatusOK, first.Code)
	assert.True(t, mockRedis.Exists("climate:precipitation"))

	second := serve(app, "/api/v1.0/precipitation")
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	serve(app, "/api/v1.0/2016-08-23/2017-08-23")
	assert.Len(t, mockRedis.Keys(), 1, "aggregates are never cached")

	w := serve(app, "/api/metrics")
	var report map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, true, report["cache"]["enabled"])
	assert.Equal(t, float64(1), report["cache"]["hits"])
	assert.Equal(t, float64(1), report["cache"]["misses"])
}

func TestApplication_StartAndShutdown(t *testing.T) {
	_, path := dbtest.NewSeeded(t)
	t.Setenv("SERVER_PORT", "18573")
	cfg := testConfig(t, path)

	app, err := NewApplicationWithConfig(cfg, nil)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Start(context.Background()) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:18573/")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, app.Shutdown(ctx))
	assert.NoError(t, <-done)
}

func TestConfigDisplayer_MasksSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Setenv("DB_PASSWORD", "supersecret")
	cfg := &config.Config{
		Database: config.DatabaseConfig{Driver: config.DriverPostgres, Password: "supersecret"},
		Cache:    config.CacheConfig{Type: config.CacheTypeNone},
	}

	displayer := NewConfigDisplayer(logger)
	displayer.LogConfig(cfg)
	displayer.LogEnvironment()

	out := buf.String()
	assert.NotContains(t, out, "supersecret")
	assert.Contains(t, out, "su*********")
	assert.Contains(t, out, `"key":"DB_PASSWORD"`)
}
