package mocks

import (
	"sync"

	"climateapi.app/internal/ports"
)

// ConfigProvider is a static ports.ConfigProvider for tests.
type ConfigProvider struct {
	Server   ports.ServerConfig
	Database ports.DatabaseConfig
	API      ports.APIConfig
	Cache    ports.CacheConfig
}

func (c *ConfigProvider) GetServerConfig() ports.ServerConfig     { return c.Server }
func (c *ConfigProvider) GetDatabaseConfig() ports.DatabaseConfig { return c.Database }
func (c *ConfigProvider) GetAPIConfig() ports.APIConfig           { return c.API }
func (c *ConfigProvider) GetCacheConfig() ports.CacheConfig       { return c.Cache }

// LogEntry is one call recorded by Logger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []ports.Field
}

// Logger records every call so tests can assert on what was logged.
type Logger struct {
	mu      sync.Mutex
	entries []LogEntry
}

func (l *Logger) Debug(msg string, fields ...ports.Field) { l.record("DEBUG", msg, fields) }
func (l *Logger) Info(msg string, fields ...ports.Field)  { l.record("INFO", msg, fields) }
func (l *Logger) Warn(msg string, fields ...ports.Field)  { l.record("WARN", msg, fields) }
func (l *Logger) Error(msg string, fields ...ports.Field) { l.record("ERROR", msg, fields) }

func (l *Logger) record(level, msg string, fields []ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: msg, Fields: fields})
}

// Entries returns a copy of the recorded calls.
func (l *Logger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// HasMessage reports whether msg was logged at level.
func (l *Logger) HasMessage(level, msg string) bool {
	for _, e := range l.Entries() {
		if e.Level == level && e.Message == msg {
			return true
		}
	}
	return false
}
