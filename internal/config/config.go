package config

import (
	"fmt"
	"os"
	"strings"

	"vitalis/internal/constants"
)

// Config holds all application configuration
type Config struct {
	DBPath    string
	LogLevel  string
	LogFormat string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		DBPath:    getEnv("VITALIS_DB_PATH", constants.DefaultDBPath),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	var errors []string

	if c.DBPath == "" {
		errors = append(errors, "VITALIS_DB_PATH cannot be empty")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of debug|info|warn|error, got: %s", c.LogLevel))
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be text or json, got: %s", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
