// Package config loads runtime configuration for the social CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file
//     (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-d string   sqlite DSN of the local state database
//	-p int      page size for paginated collections
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://127.0.0.1:8080/api/v1",
//	  "state_dsn": "social-client.db",
//	  "page_size": 5,
//	  "request_timeout": "30s",
//	  "requests_per_second": 10
//	}
//
// Primary API
//
//   - type Config                     — holds the client runtime settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
