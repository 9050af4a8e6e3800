package config

import "time"

// Config holds runtime settings for the social CLI.
//
// Fields:
//   - BaseURL: root URL of the backend REST API.
//   - StateDSN: sqlite DSN of the local client state database.
//   - PageSize: number of items requested per collection page.
//   - RequestTimeout: per-request HTTP timeout.
//   - RequestsPerSecond: client-side throttle applied to outgoing requests.
type Config struct {
	BaseURL           string
	StateDSN          string
	PageSize          int
	RequestTimeout    time.Duration
	RequestsPerSecond int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080/api/v1"
	c.StateDSN = "social-client.db"
	c.PageSize = 5
	c.RequestTimeout = 30 * time.Second
	c.RequestsPerSecond = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (optionally seeded from a .env file), a JSON file (if
// present) and command-line flags (if present). Later sources take precedence
// over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
