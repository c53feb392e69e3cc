package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBType            string // sqlite, sqlite-pure, mysql, postgres, sqlserver
	DBPath            string // file path for the embedded sqlite engines
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int
	DBLogLevel        string // silent, error, warn, info

	// Legacy key-value store (migration source)
	LegacyStorePath string
	MigrateOnStart  bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		DBType:            getEnv("DB_TYPE", "sqlite"),
		DBPath:            getEnv("DB_PATH", "salesdb.sqlite"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		DBLogLevel:        getEnv("DB_LOG_LEVEL", "warn"),
		LegacyStorePath:   getEnv("LEGACY_STORE_PATH", "legacy-store.json"),
		MigrateOnStart:    getEnvAsBool("MIGRATE_ON_START", true),
	}

	// Validate required fields
	if cfg.DBType == "sqlite" || cfg.DBType == "sqlite-pure" {
		if cfg.DBPath == "" {
			return nil, fmt.Errorf("DB_PATH is required for the embedded engines")
		}
	} else {
		if cfg.DBDatabase == "" {
			return nil, fmt.Errorf("DB_DATABASE is required for DB_TYPE %s", cfg.DBType)
		}
		if cfg.DBUser == "" {
			return nil, fmt.Errorf("DB_USER is required for DB_TYPE %s", cfg.DBType)
		}
	}

	return cfg, nil
}

// getEnv gets an environment variable with a fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as an integer with a fallback
func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getEnvAsBool gets an environment variable as a boolean with a fallback
func getEnvAsBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}
