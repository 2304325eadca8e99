// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir  string // Base directory for the cache database (always absolute)
	LogLevel string
	Port     int
	DevMode  bool

	YahooBaseURL  string        // Override for tests/proxies; empty uses the default
	DefaultPeriod string        // History range requested per analysis (e.g. "1y")
	FetchTimeout  time.Duration // Upper bound on one upstream fetch

	HistoryTTL     time.Duration // Freshness window for cached price history
	SearchTTL      time.Duration // Freshness window for cached symbol searches
	CacheSweepSpec string        // Cron spec (with seconds) for the expiry sweep
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Resolve the data directory to an absolute path and make sure it
	// exists before anything tries to open a database in it.
	dataDir := getEnv("MARKETLENS_DATA_DIR", "./data")
	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}
	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:        absDataDir,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Port:           getEnvAsInt("PORT", 8002),
		DevMode:        getEnvAsBool("DEV_MODE", false),
		YahooBaseURL:   getEnv("YAHOO_BASE_URL", ""),
		DefaultPeriod:  getEnv("DEFAULT_PERIOD", "1y"),
		FetchTimeout:   getEnvAsDuration("FETCH_TIMEOUT", 30*time.Second),
		HistoryTTL:     getEnvAsDuration("HISTORY_CACHE_TTL", 15*time.Minute),
		SearchTTL:      getEnvAsDuration("SEARCH_CACHE_TTL", 24*time.Hour),
		CacheSweepSpec: getEnv("CACHE_SWEEP_CRON", "0 0 4 * * *"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values that cannot work
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %s", c.FetchTimeout)
	}
	if c.DefaultPeriod == "" {
		return fmt.Errorf("default period must not be empty")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
