package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// GachaRepository implements gacha pool persistence for SQLite
type GachaRepository struct {
	db *sql.DB
}

// NewGachaRepository creates a new GachaRepository
func NewGachaRepository(db *sql.DB) *GachaRepository {
	return &GachaRepository{db: db}
}

func (r *GachaRepository) ListPools(ctx context.Context) ([]domain.GachaPool, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT pool_id, name, description, cost_coins, cost_premium_currency
		FROM gacha_pools ORDER BY pool_id
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPools, err)
	}
	defer rows.Close()

	pools := []domain.GachaPool{}
	for rows.Next() {
		var p domain.GachaPool
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CostCoins, &p.CostPremiumCurrency); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPools, err)
		}
		pools = append(pools, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPools, err)
	}
	return pools, nil
}

func (r *GachaRepository) GetPool(ctx context.Context, poolID int) (*domain.GachaPool, error) {
	var p domain.GachaPool
	err := r.db.QueryRowContext(ctx, `
		SELECT pool_id, name, description, cost_coins, cost_premium_currency
		FROM gacha_pools WHERE pool_id = ?
	`, poolID).Scan(&p.ID, &p.Name, &p.Description, &p.CostCoins, &p.CostPremiumCurrency)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPool, err)
	}
	return &p, nil
}

func (r *GachaRepository) CreatePool(ctx context.Context, pool *domain.GachaPool) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO gacha_pools (name, description, cost_coins, cost_premium_currency)
		VALUES (?, ?, ?, ?)
	`, pool.Name, pool.Description, pool.CostCoins, pool.CostPremiumCurrency)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}
	pool.ID = int(id)
	return nil
}

func (r *GachaRepository) UpdatePool(ctx context.Context, pool domain.GachaPool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE gacha_pools SET name = ?, description = ?, cost_coins = ?, cost_premium_currency = ?
		WHERE pool_id = ?
	`, pool.Name, pool.Description, pool.CostCoins, pool.CostPremiumCurrency, pool.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePool, err)
	}
	return requireRow(res, domain.ErrPoolNotFound, ErrMsgFailedToUpdatePool)
}

func (r *GachaRepository) DeletePool(ctx context.Context, poolID int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gacha_pools WHERE pool_id = ?`, poolID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeletePool, err)
	}
	return requireRow(res, domain.ErrPoolNotFound, ErrMsgFailedToDeletePool)
}

func (r *GachaRepository) ListPoolItems(ctx context.Context, poolID int) ([]domain.GachaPoolItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT gacha_pool_item_id, pool_id, item_type, item_id, quantity, weight
		FROM gacha_pool_items WHERE pool_id = ? ORDER BY gacha_pool_item_id
	`, poolID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPoolItems, err)
	}
	defer rows.Close()

	items := []domain.GachaPoolItem{}
	for rows.Next() {
		var it domain.GachaPoolItem
		if err := rows.Scan(&it.ID, &it.PoolID, &it.ItemType, &it.ItemID, &it.Quantity, &it.Weight); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPoolItems, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPoolItems, err)
	}
	return items, nil
}

func (r *GachaRepository) GetPoolItem(ctx context.Context, itemID int) (*domain.GachaPoolItem, error) {
	var it domain.GachaPoolItem
	err := r.db.QueryRowContext(ctx, `
		SELECT gacha_pool_item_id, pool_id, item_type, item_id, quantity, weight
		FROM gacha_pool_items WHERE gacha_pool_item_id = ?
	`, itemID).Scan(&it.ID, &it.PoolID, &it.ItemType, &it.ItemID, &it.Quantity, &it.Weight)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPoolItem, err)
	}
	return &it, nil
}

func (r *GachaRepository) AddPoolItem(ctx context.Context, item *domain.GachaPoolItem) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO gacha_pool_items (pool_id, item_type, item_id, quantity, weight)
		VALUES (?, ?, ?, ?, ?)
	`, item.PoolID, item.ItemType, item.ItemID, item.Quantity, item.Weight)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrPoolNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToAddPoolItem, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAddPoolItem, err)
	}
	item.ID = int(id)
	return nil
}

func (r *GachaRepository) UpdatePoolItem(ctx context.Context, item domain.GachaPoolItem) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE gacha_pool_items SET item_type = ?, item_id = ?, quantity = ?, weight = ?
		WHERE gacha_pool_item_id = ?
	`, item.ItemType, item.ItemID, item.Quantity, item.Weight, item.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePoolItem, err)
	}
	return requireRow(res, domain.ErrPoolItemNotFound, ErrMsgFailedToUpdatePoolItem)
}

func (r *GachaRepository) DeletePoolItem(ctx context.Context, itemID int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gacha_pool_items WHERE gacha_pool_item_id = ?`, itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeletePoolItem, err)
	}
	return requireRow(res, domain.ErrPoolItemNotFound, ErrMsgFailedToDeletePoolItem)
}
