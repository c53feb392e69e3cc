package services

import (
	"fmt"

	"github.com/localnerve/salesdb/internal/config"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Migration    string            `json:"migration"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck performs a comprehensive health check of the service
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		logrus.WithError(err).Error("Health check failed - database connection")
	} else {
		if err := sqlDB.Ping(); err != nil {
			result.Status = "unhealthy"
			result.Database = "unreachable"
			result.Details["database_ping_error"] = err.Error()
			result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
			logrus.WithError(err).Error("Health check failed - database ping")
		} else {
			result.Database = "ok"
			result.Details["database_type"] = cfg.DBType
		}
	}

	// Report migration state; a pending migration is not unhealthy, the
	// startup pipeline runs it on the next start.
	if result.Database == "ok" {
		if CheckMigrationStatus(db) {
			result.Migration = "completed"
		} else {
			result.Migration = "pending"
		}
	} else {
		result.Migration = "unknown"
	}

	if result.Status == "healthy" {
		logrus.Debug("Health check passed")
	}

	return result
}
