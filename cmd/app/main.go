package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/FishingBot_Go/docs"
	"github.com/osse101/FishingBot_Go/internal/bootstrap"
	"github.com/osse101/FishingBot_Go/internal/config"
)

// @title FishingBot API
// @version 1.0
// @description Player accounts, daily sign-in, titles and the item catalog for the FishingBot chat game.
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// @securityDefinitions.apikey AdminKeyAuth
// @in header
// @name X-Admin-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("FishingBot stopped with error", "error", err)
		_ = logFile.Close()
		os.Exit(1)
	}
	_ = logFile.Close()
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
