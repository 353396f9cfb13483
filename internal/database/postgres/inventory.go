package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// InventoryRepository reads owned accessories and titles from PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// GetUserEquippedAccessory returns the equipped accessory or nil
func (r *InventoryRepository) GetUserEquippedAccessory(ctx context.Context, userID string) (*domain.UserAccessory, error) {
	var acc domain.UserAccessory
	err := r.db.QueryRow(ctx, `
		SELECT instance_id, user_id, accessory_id, is_equipped, obtained_at
		FROM user_accessories
		WHERE user_id = $1 AND is_equipped
	`, userID).Scan(&acc.InstanceID, &acc.UserID, &acc.AccessoryID, &acc.IsEquipped, &acc.ObtainedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEquippedAccessory, err)
	}
	return &acc, nil
}

// GetUserTitles returns the ids of every title the user owns
func (r *InventoryRepository) GetUserTitles(ctx context.Context, userID string) ([]int, error) {
	return getUserTitles(ctx, r.db, userID)
}

func getUserTitles(ctx context.Context, q querier, userID string) ([]int, error) {
	rows, err := q.Query(ctx, `SELECT title_id FROM user_titles WHERE user_id = $1 ORDER BY obtained_at, title_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserTitles, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserTitles, err)
	}
	return ids, nil
}
