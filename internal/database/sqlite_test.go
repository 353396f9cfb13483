package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite_MigratesFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "fish.db")

	db, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateSQLite(ctx, db))
	require.NoError(t, MigrateSQLite(ctx, db), "second run applies nothing")

	for _, table := range []string{"users", "check_ins", "taxes", "item_templates", "user_titles", "user_accessories", "gacha_pools", "gacha_pool_items"} {
		var name string
		err := db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	var fk int
	require.NoError(t, db.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestOpenSQLite_Memory(t *testing.T) {
	ctx := context.Background()

	db, err := OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateSQLite(ctx, db))

	_, err = db.ExecContext(ctx, `INSERT INTO users (user_id, nickname, created_at) VALUES ('u1', 'Ann', 0)`)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite(context.Background(), "  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToOpenSQLite)
}

func TestCheckInUniqueConstraint(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, MigrateSQLite(ctx, db))

	_, err = db.ExecContext(ctx, `INSERT INTO users (user_id, nickname, created_at) VALUES ('u1', 'Ann', 0)`)
	require.NoError(t, err)

	insert := `INSERT INTO check_ins (user_id, check_in_date, created_at) VALUES ('u1', '2024-03-10', 0)`
	_, err = db.ExecContext(ctx, insert)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, insert)
	assert.Error(t, err, "second check-in for the same day violates the primary key")
}
