// Package config loads playground configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the complete playground configuration
type Config struct {
	Server ServerConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port         string
	MaxEnumerate int // upper bound on outcome-space size served by PMF endpoints
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PLAYGROUND_PORT", "8080"),
			MaxEnumerate: getEnvInt("PLAYGROUND_MAX_ENUMERATE", 1_000_000),
		},
	}
	if cfg.Server.MaxEnumerate < 1 {
		return nil, fmt.Errorf("PLAYGROUND_MAX_ENUMERATE must be positive, got %d", cfg.Server.MaxEnumerate)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
