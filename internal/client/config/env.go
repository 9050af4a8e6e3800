package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first, without overriding
// variables already set in the environment.
//
// Recognized variables:
//
//	SOCIAL_BASE_URL       root URL of the backend REST API
//	SOCIAL_STATE_DSN      sqlite DSN of the local state database
//	SOCIAL_PAGE_SIZE      items per collection page (integer)
//	SOCIAL_TIMEOUT        per-request timeout (Go duration, e.g. "30s")
//	SOCIAL_RPS            client-side requests per second (integer)
//
// Unparseable values are ignored.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SOCIAL_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SOCIAL_STATE_DSN"); v != "" {
		cfg.StateDSN = v
	}
	if v := os.Getenv("SOCIAL_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv("SOCIAL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("SOCIAL_RPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RequestsPerSecond = n
		}
	}
}
