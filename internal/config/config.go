package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	Version     string `env:"VERSION" envDefault:"dev"`

	DBDriver          string        `env:"DB_DRIVER" envDefault:"postgres"`
	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"fishingbot"`
	SQLitePath        string        `env:"SQLITE_PATH" envDefault:"data/fishingbot.db"`
	DBMaxConns        int32         `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMaxConnIdle     time.Duration `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	APIKey         string   `env:"API_KEY"`
	AdminKey       string   `env:"ADMIN_KEY"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	GameConfigPath  string `env:"GAME_CONFIG_PATH" envDefault:"configs/game.json"`
	GameTimezone    string `env:"GAME_TIMEZONE" envDefault:"UTC"`
	GameRNGSeed     uint64 `env:"GAME_RNG_SEED"`
	ItemsConfigPath string `env:"ITEMS_CONFIG_PATH" envDefault:"configs/items.json"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return errors.New("API_KEY environment variable must be set for security")
	}
	if c.AdminKey == "" {
		return errors.New("ADMIN_KEY environment variable must be set for security")
	}
	if c.AdminKey == c.APIKey {
		return errors.New("ADMIN_KEY must differ from API_KEY")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT value: %d", c.Port)
	}
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("invalid DB_DRIVER %q: expected %s or %s", c.DBDriver, DriverPostgres, DriverSQLite)
	}
	if _, err := time.LoadLocation(c.GameTimezone); err != nil {
		return fmt.Errorf("invalid GAME_TIMEZONE %q: %w", c.GameTimezone, err)
	}
	return nil
}

// Location returns the game timezone. Load has already validated it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.GameTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
