// connection.go
//
// A relational sales-management data service with one-time migration from the legacy key-value store
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of salesdb.
// salesdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// salesdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with salesdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package database

import (
	"fmt"

	glebarez "github.com/glebarez/sqlite"
	"github.com/localnerve/salesdb/internal/config"
	"github.com/localnerve/salesdb/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a database connection based on the configured DB_TYPE.
// The default is the embedded sqlite engine: the app is single-user and
// on-device, so it runs against one local file with a single connection.
// The server dialects exist for hosted deployments of the same service.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBType {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBPath)

	case "sqlite-pure":
		// Pure-Go sqlite, no cgo. Same file format as the sqlite dialect.
		dialector = glebarez.Open(cfg.DBPath)

	case "mysql", "mariadb":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBDatabase,
		)
		dialector = mysql.Open(dsn)

	case "postgres", "postgresql":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBDatabase,
			cfg.DBPort,
		)
		dialector = postgres.Open(dsn)

	case "sqlserver", "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBDatabase,
		)
		dialector = sqlserver.Open(dsn)

	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.DBLogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}

	if isEmbedded(cfg.DBType) {
		// Single writer; sqlite serializes statements anyway.
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	} else {
		sqlDB.SetMaxOpenConns(cfg.DBConnectionLimit)
		sqlDB.SetMaxIdleConns(cfg.DBConnectionLimit / 2)
	}

	logrus.WithFields(logrus.Fields{
		"type":     cfg.DBType,
		"database": databaseName(cfg),
	}).Info("Connected to database")

	return db, nil
}

// EnsureSchema creates any missing tables and constraints. It never drops or
// alters existing tables and is safe to run on every process start. A failure
// here is fatal to startup; the app cannot proceed without its schema.
func EnsureSchema(db *gorm.DB) error {
	return db.AutoMigrate(
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
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isEmbedded(dbType string) bool {
	return dbType == "sqlite" || dbType == "sqlite-pure"
}

func databaseName(cfg *config.Config) string {
	if isEmbedded(cfg.DBType) {
		return cfg.DBPath
	}
	return cfg.DBDatabase
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	}
	return logger.Warn
}
