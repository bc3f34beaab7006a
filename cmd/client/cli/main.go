package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/nbassil/campuslink/internal/client/cli"
	"github.com/nbassil/campuslink/internal/client/config"
	"github.com/nbassil/campuslink/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
