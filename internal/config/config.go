package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the engine
type Config struct {
	Environment           string
	LogLevel              string
	RedisURL              string
	Branches              []string      // enumerated set of valid branch values
	RegistrationLockHours int           // hours before start during which registration freezes
	ScanPollInterval      time.Duration // cadence of the code-scanning poll loop
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Environment:           getEnv("ENVIRONMENT", "production"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		RedisURL:              getEnv("REDIS_URL", ""),
		Branches:              parseList(getEnv("BRANCHES", "central,north,south,east,west")),
		RegistrationLockHours: getIntEnv("REGISTRATION_LOCK_HOURS", 24),
		ScanPollInterval:      time.Duration(getIntEnv("SCAN_POLL_INTERVAL_MS", 500)) * time.Millisecond,
	}, nil
}

// RegistrationLockWindow returns the lock window as a duration.
func (c *Config) RegistrationLockWindow() time.Duration {
	return time.Duration(c.RegistrationLockHours) * time.Hour
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// parseList parses a comma-separated value into a slice
func parseList(raw string) []string {
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
