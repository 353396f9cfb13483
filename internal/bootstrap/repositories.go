package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/FishingBot_Go/internal/config"
	"github.com/osse101/FishingBot_Go/internal/database"
	"github.com/osse101/FishingBot_Go/internal/database/postgres"
	"github.com/osse101/FishingBot_Go/internal/database/sqlite"
	"github.com/osse101/FishingBot_Go/internal/handler"
	"github.com/osse101/FishingBot_Go/internal/repository"
	"github.com/osse101/FishingBot_Go/internal/user"
)

// Repositories holds every repository implementation for the selected
// driver together with the handle used by readiness probes
type Repositories struct {
	User      user.Repositories
	Templates repository.ItemTemplate
	Gacha     repository.Gacha
	DB        handler.Pinger

	close func()
}

// Close releases the underlying connection pool
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
		slog.Info(LogMsgDatabaseClosed)
	}
}

// InitializeRepositories opens the configured database, applies pending
// migrations and builds the repositories on top of it
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return initPostgres(ctx, cfg)
	case config.DriverSQLite:
		return initSQLite(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnsupportedDriver, cfg.DBDriver)
	}
}

func initPostgres(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdle:     cfg.DBMaxConnIdle,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenDatabase, err)
	}
	if err := database.MigratePostgres(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	templates := postgres.NewItemTemplateRepository(pool)
	slog.Info(LogMsgDatabaseReady, "driver", config.DriverPostgres)
	return &Repositories{
		User: user.Repositories{
			Users:     postgres.NewUserRepository(pool),
			Logs:      postgres.NewLogRepository(pool),
			Inventory: postgres.NewInventoryRepository(pool),
			Templates: templates,
			Tx:        postgres.NewTransactor(pool),
		},
		Templates: templates,
		Gacha:     postgres.NewGachaRepository(pool),
		DB:        pool,
		close:     pool.Close,
	}, nil
}

func initSQLite(ctx context.Context, path string) (*Repositories, error) {
	db, err := database.OpenSQLite(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenDatabase, err)
	}
	if err := database.MigrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	templates := sqlite.NewItemTemplateRepository(db)
	slog.Info(LogMsgDatabaseReady, "driver", config.DriverSQLite, "path", path)
	return &Repositories{
		User: user.Repositories{
			Users:     sqlite.NewUserRepository(db),
			Logs:      sqlite.NewLogRepository(db),
			Inventory: sqlite.NewInventoryRepository(db),
			Templates: templates,
			Tx:        sqlite.NewTransactor(db),
		},
		Templates: templates,
		Gacha:     sqlite.NewGachaRepository(db),
		DB:        handler.PingFunc(db.PingContext),
		close:     func() { _ = db.Close() },
	}, nil
}
