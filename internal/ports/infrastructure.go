package ports

import "time"

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// DatabaseConfig is the non-secret view of the database settings.
type DatabaseConfig struct {
	Driver string
	Path   string
	Host   string
	Name   string
}

// APIConfig represents request handling configuration
type APIConfig struct {
	StrictDates bool
}

// CacheConfig represents listing cache configuration
type CacheConfig struct {
	Type    string
	Enabled bool
	TTL     time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetServerConfig() ServerConfig
	GetDatabaseConfig() DatabaseConfig
	GetAPIConfig() APIConfig
	GetCacheConfig() CacheConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
