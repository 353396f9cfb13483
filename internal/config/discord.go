package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DiscordConfig holds the Discord front-end configuration
type DiscordConfig struct {
	Token       string `env:"DISCORD_TOKEN"`
	AppID       string `env:"DISCORD_APP_ID"`
	APIURL      string `env:"API_URL" envDefault:"http://localhost:8080"`
	APIKey      string `env:"API_KEY"`
	HealthPort  string `env:"DISCORD_HEALTH_PORT" envDefault:"8082"`
	ForceUpdate bool   `env:"DISCORD_FORCE_COMMAND_UPDATE" envDefault:"false"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	Version     string `env:"VERSION" envDefault:"dev"`
}

// LoadDiscord loads the bot configuration from environment variables
func LoadDiscord() (*DiscordConfig, error) {
	_ = godotenv.Load()

	cfg := &DiscordConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Token == "" {
		return nil, errors.New("DISCORD_TOKEN is required")
	}
	if cfg.AppID == "" {
		return nil, errors.New("DISCORD_APP_ID is required")
	}
	return cfg, nil
}
