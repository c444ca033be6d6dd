package infrastructure

import (
	"context"

	"climateapi.app/internal/ports"
	"gorm.io/gorm"
)

// DatabaseHealthChecker pings the dataset connection
type DatabaseHealthChecker struct {
	db     *gorm.DB
	config ports.DatabaseConfig
}

func NewDatabaseHealthChecker(db *gorm.DB, config ports.DatabaseConfig) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db, config: config}
}

// Check verifies database connectivity
func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "database",
		Details: map[string]interface{}{
			"driver": d.config.Driver,
		},
	}

	if d.db == nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "database instance is nil"
		return status
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "failed to get underlying database connection"
		return status
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		status.Status = ports.StatusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = ports.StatusHealthy
	status.Details["connected"] = true
	return status
}
