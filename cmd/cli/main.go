package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/greenwood-edu/attendance/internal/cli"
	"github.com/greenwood-edu/attendance/internal/config"
	"github.com/greenwood-edu/attendance/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
