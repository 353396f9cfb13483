package repository

import (
	"context"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	CheckExists(ctx context.Context, userID string) (bool, error)
	// GetByID returns nil, nil when the user does not exist
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	// Add returns domain.ErrUserAlreadyExists on a duplicate id
	Add(ctx context.Context, user domain.User) error
	Update(ctx context.Context, user domain.User) error
	GetLeaderboardData(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}
