package repository

import (
	"context"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// Inventory defines read access to a user's owned accessories and titles
type Inventory interface {
	// GetUserEquippedAccessory returns nil, nil when nothing is equipped
	GetUserEquippedAccessory(ctx context.Context, userID string) (*domain.UserAccessory, error)
	GetUserTitles(ctx context.Context, userID string) ([]int, error)
}
