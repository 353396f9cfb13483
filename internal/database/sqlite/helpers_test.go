package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/FishingBot_Go/internal/database"
	"github.com/osse101/FishingBot_Go/internal/domain"
)

// newTestDB opens a migrated database file private to the test
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.MigrateSQLite(ctx, db))
	return db
}

func addUser(t *testing.T, repo *UserRepository, id string, coins int) domain.User {
	t.Helper()
	u := domain.User{
		ID:        id,
		Nickname:  "nick-" + id,
		Coins:     coins,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, repo.Add(context.Background(), u))
	return u
}
