package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// InventoryRepository reads owned accessories and titles from SQLite
type InventoryRepository struct {
	db *sql.DB
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) GetUserEquippedAccessory(ctx context.Context, userID string) (*domain.UserAccessory, error) {
	var (
		acc      domain.UserAccessory
		obtained int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT instance_id, user_id, accessory_id, is_equipped, obtained_at
		FROM user_accessories
		WHERE user_id = ? AND is_equipped = 1
	`, userID).Scan(&acc.InstanceID, &acc.UserID, &acc.AccessoryID, &acc.IsEquipped, &obtained)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEquippedAccessory, err)
	}
	acc.ObtainedAt = fromMillis(obtained)
	return &acc, nil
}

func (r *InventoryRepository) GetUserTitles(ctx context.Context, userID string) ([]int, error) {
	return getUserTitles(ctx, r.db, userID)
}

func getUserTitles(ctx context.Context, q querier, userID string) ([]int, error) {
	rows, err := q.QueryContext(ctx, `SELECT title_id FROM user_titles WHERE user_id = ? ORDER BY obtained_at, title_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserTitles, err)
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserTitles, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserTitles, err)
	}
	return ids, nil
}
