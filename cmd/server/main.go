package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"nfl-data-service/internal/config"
	"nfl-data-service/internal/logging"
	"nfl-data-service/internal/server"
)

const appVersion = "dev"

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nfl-data-service",
		Version: appVersion,
	})

	if cfg.Tank01.APIKey == "" {
		logger.Warn("TANK01_API_KEY not set, serving empty data until configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
