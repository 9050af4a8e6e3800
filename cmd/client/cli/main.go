package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/kpjunaid/socialgo/internal/client/cli"
	"github.com/kpjunaid/socialgo/internal/client/config"
	"github.com/kpjunaid/socialgo/internal/logging"
)

func main() {

	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}
