package database

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"climateapi.app/internal/config"
	"climateapi.app/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the dataset described by cfg. SQLite files are opened
// read-only and must already exist.
func Open(cfg config.DatabaseConfig, log *slog.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = slog.Default()
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 NewSlogGormLogger(log, time.Duration(cfg.SlowQueryMillis)*time.Millisecond),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, errors.NewDatabaseError(fmt.Sprintf("connect to %s database", cfg.Driver), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.NewDatabaseError("get underlying database handle", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, errors.NewDatabaseError(fmt.Sprintf("ping %s database", cfg.Driver), err)
	}

	return db, nil
}

// Dialector picks the gorm driver for cfg.Driver.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		dsn, err := SQLiteDSN(cfg.Path)
		if err != nil {
			return nil, err
		}
		return sqlite.Open(dsn), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.GetDSN()), nil
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported database driver: %s", cfg.Driver), nil)
	}
}

// SQLiteDSN resolves path against the working directory and builds a
// read-only URI for it.
func SQLiteDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.NewConfigurationError(fmt.Sprintf("resolve database path %s", path), err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewConfigurationError(fmt.Sprintf("database file not found: %s", abs), err)
		}
		return "", errors.NewConfigurationError(fmt.Sprintf("stat database file %s", abs), err)
	}
	if info.IsDir() {
		return "", errors.NewConfigurationError(fmt.Sprintf("database path is a directory: %s", abs), nil)
	}

	return fmt.Sprintf("file:%s?mode=ro", filepath.ToSlash(abs)), nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
