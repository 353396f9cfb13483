package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/repository"
)

func TestHashUserID(t *testing.T) {
	a := hashUserID("discord:1")
	assert.Equal(t, a, hashUserID("discord:1"), "stable")
	assert.NotEqual(t, a, hashUserID("discord:2"))
	assert.GreaterOrEqual(t, a, int64(0))
}

func TestUserTx_CommitAndRollback(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	users := NewUserRepository(pool)
	tr := NewTransactor(pool)

	addUser(t, users, "u1", 100)
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tx, err := tr.BeginUserTx(ctx, "u1")
	require.NoError(t, err)
	u, err := tx.GetByID(ctx, "u1")
	require.NoError(t, err)
	u.Coins = 999
	require.NoError(t, tx.Update(ctx, *u))
	require.NoError(t, tx.AddCheckIn(ctx, "u1", day))
	require.NoError(t, tx.Rollback(ctx))

	got, err := users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Coins, "rolled back")

	tx, err = tr.BeginUserTx(ctx, "u1")
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)
	u, err = tx.GetByID(ctx, "u1")
	require.NoError(t, err)
	u.Coins = 321
	require.NoError(t, tx.Update(ctx, *u))
	require.NoError(t, tx.AddCheckIn(ctx, "u1", day))
	checked, err := tx.HasCheckedIn(ctx, "u1", day)
	require.NoError(t, err)
	assert.True(t, checked)
	titles, err := tx.GetUserTitles(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, titles)
	require.NoError(t, tx.Commit(ctx))

	got, err = users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 321, got.Coins)
}

// TestUserTx_SerializesSameUser runs read-modify-write increments concurrently;
// with the advisory lock no update is lost.
func TestUserTx_SerializesSameUser(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	users := NewUserRepository(pool)
	tr := NewTransactor(pool)

	addUser(t, users, "u1", 0)

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := tr.BeginUserTx(ctx, "u1")
			if err != nil {
				errs <- err
				return
			}
			defer repository.SafeRollback(ctx, tx)

			u, err := tx.GetByID(ctx, "u1")
			if err != nil {
				errs <- err
				return
			}
			u.Coins++
			if err := tx.Update(ctx, *u); err != nil {
				errs <- err
				return
			}
			errs <- tx.Commit(ctx)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	got, err := users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, workers, got.Coins)
}

func TestUserTx_DuplicateCheckInSurfacesSentinel(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	users := NewUserRepository(pool)
	logs := NewLogRepository(pool)
	tr := NewTransactor(pool)

	addUser(t, users, "u1", 0)
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, logs.AddCheckIn(ctx, "u1", day))

	tx, err := tr.BeginUserTx(ctx, "u1")
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	assert.ErrorIs(t, tx.AddCheckIn(ctx, "u1", day), domain.ErrAlreadyCheckedIn)
}
