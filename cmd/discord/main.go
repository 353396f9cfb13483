package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/FishingBot_Go/internal/config"
	"github.com/osse101/FishingBot_Go/internal/discord"
	"github.com/osse101/FishingBot_Go/internal/logger"
)

const serviceName = "fishingbot-discord"

func main() {
	cfg, err := config.LoadDiscord()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Install(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Service:     serviceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		AddSource:   cfg.Environment == "dev",
	}, os.Stdout)

	slog.Info("Configured API URL", "url", cfg.APIURL)
	if cfg.APIKey == "" {
		slog.Warn("API_KEY not set, discord bot requests may fail")
	}

	if err := run(cfg); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.DiscordConfig) error {
	bot, err := discord.New(discord.Config{
		Token:  cfg.Token,
		AppID:  cfg.AppID,
		APIURL: cfg.APIURL,
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return err
	}

	httpServer := discord.NewHTTPServer(cfg.HealthPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	if err := bot.RegisterCommands(bot.Registry, cfg.ForceUpdate); err != nil {
		// Commands registered on a previous run still work
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return bot.Run(ctx)
}
