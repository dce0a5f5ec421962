package config

import (
	"os"
	"time"
)

// Environment variables recognized by parseEnv. API_BASE_URL plays the role
// the web client's public API URL variable plays.
const (
	envBaseURL     = "API_BASE_URL"
	envStatePath   = "STATE_PATH"
	envHTTPTimeout = "HTTP_TIMEOUT"
)

// parseEnv overlays cfg with values from the process environment. Unset or
// malformed variables keep the earlier values.
func parseEnv(cfg *Config) {
	cfg.BaseURL = getEnv(envBaseURL, cfg.BaseURL)
	cfg.StatePath = getEnv(envStatePath, cfg.StatePath)

	if v := os.Getenv(envHTTPTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = d
		}
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
