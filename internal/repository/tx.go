package repository

import (
	"context"
	"time"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// UserTx is a transaction that holds exclusive access to one user until it
// commits or rolls back. Concurrent BeginUserTx calls for the same user block.
type UserTx interface {
	Tx
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, user domain.User) error
	HasCheckedIn(ctx context.Context, userID string, day time.Time) (bool, error)
	AddCheckIn(ctx context.Context, userID string, day time.Time) error
	GetUserTitles(ctx context.Context, userID string) ([]int, error)
}

// Transactor opens per-user transactions
type Transactor interface {
	BeginUserTx(ctx context.Context, userID string) (UserTx, error)
}
