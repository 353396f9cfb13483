package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/osse101/FishingBot_Go/internal/catalog"
	"github.com/osse101/FishingBot_Go/internal/config"
	"github.com/osse101/FishingBot_Go/internal/event"
	"github.com/osse101/FishingBot_Go/internal/server"
	"github.com/osse101/FishingBot_Go/internal/user"
	"github.com/osse101/FishingBot_Go/internal/utils"
)

// App is the fully wired core service
type App struct {
	Config       *config.Config
	Repositories *Repositories
	Bus          event.Bus
	Users        user.Service
	Catalog      catalog.Service
	Server       *server.Server
}

// Build opens the database, syncs the item catalog and wires the services
// and HTTP server. It does not start listening.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "detail", w)
	}

	game, err := config.LoadGameConfig(cfg.GameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadGame, err)
	}
	slog.Info(LogMsgGameConfigLoaded,
		"path", cfg.GameConfigPath,
		"initial_coins", game.InitialCoins,
		"min_reward", game.MinReward,
		"max_reward", game.MaxReward)

	repos, err := InitializeRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if _, err := SyncItems(ctx, cfg.ItemsConfigPath, repos.Templates); err != nil {
		repos.Close()
		return nil, err
	}

	bus := InitializeEventSystem()

	userOpts := []user.Option{
		user.WithLocation(cfg.Location()),
		user.WithEventBus(bus),
	}
	if cfg.GameRNGSeed != 0 {
		slog.Warn(LogMsgSeededRoller, "seed", cfg.GameRNGSeed)
		userOpts = append(userOpts, user.WithRoller(utils.NewSeededRoller(cfg.GameRNGSeed)))
	}
	users := user.NewService(repos.User, game, userOpts...)
	cat := catalog.NewService(repos.Templates, repos.Gacha,
		catalog.WithTemplateCache(TemplateCacheSize, TemplateCacheTTL),
	)

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		AdminKey:       cfg.AdminKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, server.Services{
		User:    users,
		Catalog: cat,
		DB:      repos.DB,
	})

	return &App{
		Config:       cfg,
		Repositories: repos,
		Bus:          bus,
		Users:        users,
		Catalog:      cat,
		Server:       srv,
	}, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info(LogMsgServerListening, "port", a.Config.Port)
		if err := a.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	GracefulShutdown(shutdownCtx, ShutdownComponents{
		Server:       a.Server,
		Repositories: a.Repositories,
	})

	return runErr
}
