package catalog

import (
	"context"
	"fmt"

	"golang.org/x/text/message"

	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/logger"
)

func (s *service) ListPools(ctx context.Context) ([]domain.GachaPool, error) {
	pools, err := s.gacha.ListPools(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListPoolsFailed, err)
	}
	return pools, nil
}

func (s *service) CreatePool(ctx context.Context, in PoolInput) (*domain.GachaPool, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	var p domain.GachaPool
	in.apply(&p)
	if err := s.gacha.CreatePool(ctx, &p); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSavePoolFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgPoolCreated, "pool_id", p.ID)
	return &p, nil
}

func (s *service) UpdatePool(ctx context.Context, poolID int, in PoolInput) (*domain.GachaPool, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	p := domain.GachaPool{ID: poolID}
	in.apply(&p)
	if err := s.gacha.UpdatePool(ctx, p); err != nil {
		return nil, wrap(ErrMsgSavePoolFailed, err, domain.ErrPoolNotFound)
	}
	logger.FromContext(ctx).Info(LogMsgPoolUpdated, "pool_id", poolID)
	return &p, nil
}

func (s *service) DeletePool(ctx context.Context, poolID int) error {
	if err := s.gacha.DeletePool(ctx, poolID); err != nil {
		return wrap(ErrMsgDeletePoolFailed, err, domain.ErrPoolNotFound)
	}
	logger.FromContext(ctx).Info(LogMsgPoolDeleted, "pool_id", poolID)
	return nil
}

// GetPoolDetails returns a pool with display names for its entries and the
// rods, baits and accessories an administrator can add to it
func (s *service) GetPoolDetails(ctx context.Context, poolID int) (*domain.PoolDetails, error) {
	pool, err := s.gacha.GetPool(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetPoolFailed, err)
	}
	if pool == nil {
		return nil, domain.ErrPoolNotFound
	}

	items, err := s.gacha.ListPoolItems(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListPoolItemsFailed, err)
	}
	pool.Items = items

	details := &domain.PoolDetails{
		Pool:  *pool,
		Items: make([]domain.EnrichedPoolItem, 0, len(items)),
	}
	for _, item := range items {
		name, err := s.itemName(ctx, item)
		if err != nil {
			return nil, err
		}
		details.Items = append(details.Items, domain.EnrichedPoolItem{GachaPoolItem: item, ItemName: name})
	}

	if details.AllRods, err = s.templates.ListByKind(ctx, domain.ItemKindRod); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListTemplatesFailed, err)
	}
	if details.AllBaits, err = s.templates.ListByKind(ctx, domain.ItemKindBait); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListTemplatesFailed, err)
	}
	if details.AllAccessories, err = s.templates.ListByKind(ctx, domain.ItemKindAccessory); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListTemplatesFailed, err)
	}
	return details, nil
}

func (s *service) itemName(ctx context.Context, item domain.GachaPoolItem) (string, error) {
	if item.ItemType == domain.PoolItemCoins {
		return message.NewPrinter(s.lang).Sprintf(CoinsItemNameFormat, item.Quantity), nil
	}
	kind, ok := domain.PoolItemKind(item.ItemType)
	if !ok {
		return UnknownItemName, nil
	}
	t, err := s.lookupTemplate(ctx, kind, item.ItemID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgGetTemplateFailed, err)
	}
	if t == nil {
		return UnknownItemName, nil
	}
	return t.Name, nil
}

// checkPoolItem rejects entries that point at templates that do not exist
func (s *service) checkPoolItem(ctx context.Context, in PoolItemInput) error {
	kind, ok := domain.PoolItemKind(in.ItemType)
	if !ok {
		return nil
	}
	t, err := s.templates.GetByKindAndID(ctx, kind, in.ItemID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgGetTemplateFailed, err)
	}
	if t == nil {
		return fmt.Errorf("%w: no %s with id %d", domain.ErrInvalidPoolItem, kind, in.ItemID)
	}
	return nil
}

func (s *service) AddPoolItem(ctx context.Context, poolID int, in PoolItemInput) (*domain.GachaPoolItem, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.checkPoolItem(ctx, in); err != nil {
		return nil, err
	}

	item := domain.GachaPoolItem{PoolID: poolID}
	in.apply(&item)
	if err := s.gacha.AddPoolItem(ctx, &item); err != nil {
		return nil, wrap(ErrMsgSavePoolItemFailed, err, domain.ErrPoolNotFound)
	}
	logger.FromContext(ctx).Info(LogMsgPoolItemAdded, "pool_id", poolID, "item_id", item.ID)
	return &item, nil
}

func (s *service) UpdatePoolItem(ctx context.Context, itemID int, in PoolItemInput) (*domain.GachaPoolItem, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	existing, err := s.gacha.GetPoolItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSavePoolItemFailed, err)
	}
	if existing == nil {
		return nil, domain.ErrPoolItemNotFound
	}
	if err := s.checkPoolItem(ctx, in); err != nil {
		return nil, err
	}

	in.apply(existing)
	if err := s.gacha.UpdatePoolItem(ctx, *existing); err != nil {
		return nil, wrap(ErrMsgSavePoolItemFailed, err, domain.ErrPoolItemNotFound)
	}
	logger.FromContext(ctx).Info(LogMsgPoolItemUpdated, "item_id", itemID)
	return existing, nil
}

func (s *service) DeletePoolItem(ctx context.Context, itemID int) error {
	if err := s.gacha.DeletePoolItem(ctx, itemID); err != nil {
		return wrap(ErrMsgDeletePoolItemFailed, err, domain.ErrPoolItemNotFound)
	}
	logger.FromContext(ctx).Info(LogMsgPoolItemDeleted, "item_id", itemID)
	return nil
}
