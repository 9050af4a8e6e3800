package config

import (
	"flag"
	"os"
	"time"

	"github.com/kpjunaid/socialgo/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend REST API (default from Config)
//	-d string   sqlite DSN of the local state database
//	-p int      page size for paginated collections
//	-t int      request timeout in seconds
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-p", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend REST API")
	fs.StringVar(&cfg.StateDSN, "d", cfg.StateDSN, "sqlite DSN of the local state database")
	pageSize := fs.Int("p", cfg.PageSize, "page size for paginated collections")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Non-positive values are ignored, same as in the env and JSON stages.
	if *pageSize > 0 {
		cfg.PageSize = *pageSize
	}
	if *timeout > 0 {
		cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	}
}
