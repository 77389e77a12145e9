// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mmynk/teamtally/internal/jobs"
	"github.com/mmynk/teamtally/internal/storage/rediskv"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

type Config struct {
	Port int

	// StorageDriver selects the backend: sqlite, postgres, redis or memory.
	StorageDriver string
	DBPath        string
	DatabaseURL   string
	RedisURL      string
	RedisPrefix   string

	// OverdueSchedule is the cron spec of the overdue reporter. Setting
	// OVERDUE_SCHEDULE to an empty value disables it.
	OverdueSchedule string

	LogLevel  string
	LogFormat string
}

// Load reads the configuration and checks that the selected storage driver
// has what it needs.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnvInt("PORT", 8080),
		StorageDriver:   getEnv("STORAGE_DRIVER", DriverSQLite),
		DBPath:          getEnv("DB_PATH", "./data/teamtally.db"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
		RedisPrefix:     getEnv("REDIS_PREFIX", rediskv.DefaultPrefix),
		OverdueSchedule: getEnvAllowEmpty("OVERDUE_SCHEDULE", jobs.DefaultSchedule),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
	}

	switch cfg.StorageDriver {
	case DriverSQLite, DriverRedis, DriverMemory:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the %s driver", DriverPostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAllowEmpty is getEnv, except that a variable set to "" stays empty.
func getEnvAllowEmpty(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
