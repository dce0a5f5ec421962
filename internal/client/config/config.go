package config

import "time"

// Config holds runtime settings for the blogging client.
//
// Fields:
//   - BaseURL: backend API base address, including the version prefix.
//   - StatePath: SQLite DSN of the local state database (token storage).
//   - HTTPTimeout: transport-level timeout applied to every request.
type Config struct {
	BaseURL     string
	StatePath   string
	HTTPTimeout time.Duration
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api/v1"
	c.StatePath = "medium.db"
	c.HTTPTimeout = 30 * time.Second
}

// Load constructs a Config by applying defaults, then overlaying values
// from a JSON file, environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
