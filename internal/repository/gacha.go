package repository

import (
	"context"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// Gacha defines the interface for gacha pool persistence
type Gacha interface {
	ListPools(ctx context.Context) ([]domain.GachaPool, error)
	// GetPool returns nil, nil when the pool does not exist
	GetPool(ctx context.Context, poolID int) (*domain.GachaPool, error)
	CreatePool(ctx context.Context, pool *domain.GachaPool) error
	// UpdatePool and DeletePool return domain.ErrPoolNotFound when no row matches
	UpdatePool(ctx context.Context, pool domain.GachaPool) error
	DeletePool(ctx context.Context, poolID int) error

	ListPoolItems(ctx context.Context, poolID int) ([]domain.GachaPoolItem, error)
	GetPoolItem(ctx context.Context, itemID int) (*domain.GachaPoolItem, error)
	AddPoolItem(ctx context.Context, item *domain.GachaPoolItem) error
	// UpdatePoolItem and DeletePoolItem return domain.ErrPoolItemNotFound when no row matches
	UpdatePoolItem(ctx context.Context, item domain.GachaPoolItem) error
	DeletePoolItem(ctx context.Context, itemID int) error
}
