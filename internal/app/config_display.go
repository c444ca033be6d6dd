package app

import (
	"log/slog"
	"os"
	"sort"
	"strings"

	"climateapi.app/internal/config"
)

var envPrefixes = []string{"SERVER_", "GIN_", "DB_", "LOG_", "API_", "CACHE_", "REDIS_"}

// ConfigDisplayer logs the effective configuration at debug level
type ConfigDisplayer struct {
	logger *slog.Logger
}

func NewConfigDisplayer(logger *slog.Logger) *ConfigDisplayer {
	return &ConfigDisplayer{logger: logger}
}

// LogConfig logs every configuration field with secrets masked
func (cd *ConfigDisplayer) LogConfig(cfg *config.Config) {
	cd.logger.Debug("Configuration",
		slog.Group("server",
			"port", cfg.Server.Port,
			"gin_mode", cfg.Server.GinMode),
		slog.Group("database",
			"driver", cfg.Database.Driver,
			"path", cfg.Database.Path,
			"host", cfg.Database.Host,
			"port", cfg.Database.Port,
			"user", cfg.Database.User,
			"password", cd.maskString(cfg.Database.Password),
			"name", cfg.Database.Name,
			"ssl_mode", cfg.Database.SSLMode,
			"slow_query_ms", cfg.Database.SlowQueryMillis),
		slog.Group("log",
			"level", cfg.Log.Level,
			"format", cfg.Log.Format),
		slog.Group("api",
			"strict_dates", cfg.API.StrictDates),
		slog.Group("cache",
			"type", cfg.Cache.Type.String(),
			"ttl_minutes", cfg.Cache.TTLMinutes,
			"redis_addr", cfg.Cache.Redis.Addr,
			"redis_password", cd.maskString(cfg.Cache.Redis.Password),
			"redis_db", cfg.Cache.Redis.DB),
	)
}

// LogEnvironment logs the environment variables this service reads
func (cd *ConfigDisplayer) LogEnvironment() {
	envVars := os.Environ()
	sort.Strings(envVars)

	for _, env := range envVars {
		key, value, ok := strings.Cut(env, "=")
		if !ok || !cd.isRelevant(key) {
			continue
		}
		if cd.isSensitive(key) {
			value = cd.maskString(value)
		}
		cd.logger.Debug("Environment", "key", key, "value", value)
	}
}

func (cd *ConfigDisplayer) maskString(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	visible := len(s) / 4
	return s[:visible] + strings.Repeat("*", len(s)-visible)
}

func (cd *ConfigDisplayer) isRelevant(key string) bool {
	for _, prefix := range envPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

func (cd *ConfigDisplayer) isSensitive(key string) bool {
	key = strings.ToUpper(key)
	for _, sensitive := range []string{"PASSWORD", "SECRET", "TOKEN", "KEY", "PASS"} {
		if strings.Contains(key, sensitive) {
			return true
		}
	}
	return false
}
