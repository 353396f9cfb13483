package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/repository"
)

// SQLAdvisoryLock takes a transaction-scoped lock released on commit or rollback
const SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

// Transactor opens per-user transactions guarded by advisory locks
type Transactor struct {
	db *pgxpool.Pool
}

// NewTransactor creates a new Transactor
func NewTransactor(db *pgxpool.Pool) *Transactor {
	return &Transactor{db: db}
}

// BeginUserTx starts a transaction and blocks until it holds the user's lock.
// The lock works even before the user row exists.
func (t *Transactor) BeginUserTx(ctx context.Context, userID string) (repository.UserTx, error) {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}

	if _, err := tx.Exec(ctx, SQLAdvisoryLock, hashUserID(userID)); err != nil {
		SafeRollback(ctx, tx)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAcquireUserLock, err)
	}

	return &userTx{tx: tx}, nil
}

type userTx struct {
	tx pgx.Tx
}

func (u *userTx) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return getUser(ctx, u.tx, `SELECT `+userColumns+` FROM users WHERE user_id = $1 FOR UPDATE`, userID)
}

func (u *userTx) Update(ctx context.Context, user domain.User) error {
	return updateUser(ctx, u.tx, user)
}

func (u *userTx) HasCheckedIn(ctx context.Context, userID string, day time.Time) (bool, error) {
	return hasCheckedIn(ctx, u.tx, userID, day)
}

func (u *userTx) AddCheckIn(ctx context.Context, userID string, day time.Time) error {
	return addCheckIn(ctx, u.tx, userID, day)
}

func (u *userTx) GetUserTitles(ctx context.Context, userID string) ([]int, error) {
	return getUserTitles(ctx, u.tx, userID)
}

func (u *userTx) Commit(ctx context.Context) error {
	if err := u.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (u *userTx) Rollback(ctx context.Context) error {
	return u.tx.Rollback(ctx)
}
