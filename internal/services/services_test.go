package services_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/salesdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Client{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductVariation{},
		&models.Industry{},
		&models.Order{},
		&models.OrderLineItem{},
		&models.OrderInstallment{},
		&models.ConfigurationEntry{},
		&models.MigrationRun{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func strptr(s string) *string {
	return &s
}
