package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/osse101/FishingBot_Go/internal/concurrency"
	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/repository"
)

// Transactor opens SQLite transactions. The connection is opened with
// _txlock=immediate, so each transaction takes the database write lock up front.
// Transactions for the same user also queue on an in-process lock, so they wait
// on ctx instead of the busy timeout.
type Transactor struct {
	db    *sql.DB
	locks *concurrency.LockManager
}

// NewTransactor creates a new Transactor
func NewTransactor(db *sql.DB) *Transactor {
	return &Transactor{db: db, locks: concurrency.NewLockManager()}
}

// BeginUserTx starts a transaction holding the database write lock
func (t *Transactor) BeginUserTx(ctx context.Context, userID string) (repository.UserTx, error) {
	unlock, err := t.locks.Lock(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		unlock()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &userTx{tx: tx, unlock: unlock}, nil
}

type userTx struct {
	tx     *sql.Tx
	unlock func()
}

func (u *userTx) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return getUser(ctx, u.tx, userID)
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

func (u *userTx) Commit(_ context.Context) error {
	defer u.unlock()
	if err := u.tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (u *userTx) Rollback(_ context.Context) error {
	defer u.unlock()
	return u.tx.Rollback()
}
