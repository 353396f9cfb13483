package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// GachaRepository implements gacha pool persistence for PostgreSQL
type GachaRepository struct {
	db *pgxpool.Pool
}

// NewGachaRepository creates a new GachaRepository
func NewGachaRepository(db *pgxpool.Pool) *GachaRepository {
	return &GachaRepository{db: db}
}

func (r *GachaRepository) ListPools(ctx context.Context) ([]domain.GachaPool, error) {
	rows, err := r.db.Query(ctx, `
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
	err := r.db.QueryRow(ctx, `
		SELECT pool_id, name, description, cost_coins, cost_premium_currency
		FROM gacha_pools WHERE pool_id = $1
	`, poolID).Scan(&p.ID, &p.Name, &p.Description, &p.CostCoins, &p.CostPremiumCurrency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPool, err)
	}
	return &p, nil
}

func (r *GachaRepository) CreatePool(ctx context.Context, pool *domain.GachaPool) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO gacha_pools (name, description, cost_coins, cost_premium_currency)
		VALUES ($1, $2, $3, $4)
		RETURNING pool_id
	`, pool.Name, pool.Description, pool.CostCoins, pool.CostPremiumCurrency).Scan(&pool.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}
	return nil
}

func (r *GachaRepository) UpdatePool(ctx context.Context, pool domain.GachaPool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE gacha_pools SET name = $2, description = $3, cost_coins = $4, cost_premium_currency = $5
		WHERE pool_id = $1
	`, pool.ID, pool.Name, pool.Description, pool.CostCoins, pool.CostPremiumCurrency)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePool, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPoolNotFound
	}
	return nil
}

// DeletePool removes a pool; its items cascade
func (r *GachaRepository) DeletePool(ctx context.Context, poolID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM gacha_pools WHERE pool_id = $1`, poolID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeletePool, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPoolNotFound
	}
	return nil
}

func (r *GachaRepository) ListPoolItems(ctx context.Context, poolID int) ([]domain.GachaPoolItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT gacha_pool_item_id, pool_id, item_type, item_id, quantity, weight
		FROM gacha_pool_items WHERE pool_id = $1 ORDER BY gacha_pool_item_id
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
	err := r.db.QueryRow(ctx, `
		SELECT gacha_pool_item_id, pool_id, item_type, item_id, quantity, weight
		FROM gacha_pool_items WHERE gacha_pool_item_id = $1
	`, itemID).Scan(&it.ID, &it.PoolID, &it.ItemType, &it.ItemID, &it.Quantity, &it.Weight)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPoolItem, err)
	}
	return &it, nil
}

func (r *GachaRepository) AddPoolItem(ctx context.Context, item *domain.GachaPoolItem) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO gacha_pool_items (pool_id, item_type, item_id, quantity, weight)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING gacha_pool_item_id
	`, item.PoolID, item.ItemType, item.ItemID, item.Quantity, item.Weight).Scan(&item.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrPoolNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToAddPoolItem, err)
	}
	return nil
}

func (r *GachaRepository) UpdatePoolItem(ctx context.Context, item domain.GachaPoolItem) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE gacha_pool_items SET item_type = $2, item_id = $3, quantity = $4, weight = $5
		WHERE gacha_pool_item_id = $1
	`, item.ID, item.ItemType, item.ItemID, item.Quantity, item.Weight)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePoolItem, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPoolItemNotFound
	}
	return nil
}

func (r *GachaRepository) DeletePoolItem(ctx context.Context, itemID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM gacha_pool_items WHERE gacha_pool_item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeletePoolItem, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPoolItemNotFound
	}
	return nil
}
