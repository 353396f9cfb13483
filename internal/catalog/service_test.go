package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

func newTestService() (Service, *MockTemplates, *MockGacha) {
	templates := &MockTemplates{}
	gacha := &MockGacha{}
	return NewService(templates, gacha), templates, gacha
}

func TestTemplates_InvalidKind(t *testing.T) {
	svc, templates, _ := newTestService()
	ctx := context.Background()

	_, err := svc.ListTemplates(ctx, "boat")
	assert.ErrorIs(t, err, domain.ErrInvalidItemKind)
	_, err = svc.CreateTemplate(ctx, "boat", TemplateInput{Name: "x", Rarity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidItemKind)
	assert.ErrorIs(t, svc.DeleteTemplate(ctx, "boat", 1), domain.ErrInvalidItemKind)

	templates.AssertNotCalled(t, "ListByKind", mock.Anything, mock.Anything)
}

func TestCreateTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id", func(t *testing.T) {
		svc, templates, _ := newTestService()
		templates.On("Create", ctx, mock.MatchedBy(func(tmpl *domain.ItemTemplate) bool {
			return tmpl.Kind == domain.ItemKindRod && tmpl.Name == "Bamboo Rod" && tmpl.Rarity == 2
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.ItemTemplate).ID = 7
		}).Return(nil)

		got, err := svc.CreateTemplate(ctx, domain.ItemKindRod, TemplateInput{Name: "Bamboo Rod", Rarity: 2, Price: 30})
		require.NoError(t, err)
		assert.Equal(t, 7, got.ID)
		assert.Equal(t, 30, got.Price)
		templates.AssertExpectations(t)
	})

	invalid := []struct {
		name string
		in   TemplateInput
	}{
		{"missing name", TemplateInput{Rarity: 1}},
		{"rarity too low", TemplateInput{Name: "x", Rarity: 0}},
		{"rarity too high", TemplateInput{Name: "x", Rarity: 11}},
		{"negative price", TemplateInput{Name: "x", Rarity: 1, Price: -1}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			svc, templates, _ := newTestService()
			_, err := svc.CreateTemplate(ctx, domain.ItemKindFish, tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			templates.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestGetTemplate(t *testing.T) {
	svc, templates, _ := newTestService()
	ctx := context.Background()
	fish := &domain.ItemTemplate{ID: 1, Kind: domain.ItemKindFish, Name: "Carp"}
	templates.On("GetByKindAndID", ctx, domain.ItemKindFish, 1).Return(fish, nil)
	templates.On("GetByKindAndID", ctx, domain.ItemKindFish, 2).Return(nil, nil)

	got, err := svc.GetTemplate(ctx, domain.ItemKindFish, 1)
	require.NoError(t, err)
	assert.Equal(t, fish, got)

	_, err = svc.GetTemplate(ctx, domain.ItemKindFish, 2)
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestUpdateAndDeleteTemplate_Errors(t *testing.T) {
	svc, templates, _ := newTestService()
	ctx := context.Background()
	boom := errors.New("db down")

	templates.On("Update", ctx, mock.MatchedBy(func(tmpl domain.ItemTemplate) bool { return tmpl.ID == 1 })).Return(domain.ErrTemplateNotFound)
	templates.On("Update", ctx, mock.MatchedBy(func(tmpl domain.ItemTemplate) bool { return tmpl.ID == 2 })).Return(boom)
	templates.On("Delete", ctx, domain.ItemKindBait, 3).Return(nil)

	_, err := svc.UpdateTemplate(ctx, domain.ItemKindBait, 1, TemplateInput{Name: "Worm", Rarity: 1})
	assert.Equal(t, domain.ErrTemplateNotFound, err, "sentinel is returned unwrapped")

	_, err = svc.UpdateTemplate(ctx, domain.ItemKindBait, 2, TemplateInput{Name: "Worm", Rarity: 1})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), ErrMsgUpdateTemplateFailed)

	assert.NoError(t, svc.DeleteTemplate(ctx, domain.ItemKindBait, 3))
}

func TestGetPoolDetails(t *testing.T) {
	svc, templates, gacha := newTestService()
	ctx := context.Background()

	rods := []domain.ItemTemplate{{ID: 1, Kind: domain.ItemKindRod, Name: "Bamboo Rod"}}
	gacha.On("GetPool", ctx, 1).Return(&domain.GachaPool{ID: 1, Name: "Starter"}, nil)
	gacha.On("ListPoolItems", ctx, 1).Return([]domain.GachaPoolItem{
		{ID: 10, PoolID: 1, ItemType: domain.PoolItemRod, ItemID: 1, Quantity: 1, Weight: 5},
		{ID: 11, PoolID: 1, ItemType: domain.PoolItemCoins, Quantity: 1500, Weight: 10},
		{ID: 12, PoolID: 1, ItemType: domain.PoolItemTitle, ItemID: 9, Quantity: 1, Weight: 1},
		{ID: 13, PoolID: 1, ItemType: "mystery", Quantity: 1, Weight: 1},
	}, nil)
	templates.On("GetByKindAndID", ctx, domain.ItemKindRod, 1).Return(&rods[0], nil)
	templates.On("GetByKindAndID", ctx, domain.ItemKindTitle, 9).Return(nil, nil)
	templates.On("ListByKind", ctx, domain.ItemKindRod).Return(rods, nil)
	templates.On("ListByKind", ctx, domain.ItemKindBait).Return([]domain.ItemTemplate{}, nil)
	templates.On("ListByKind", ctx, domain.ItemKindAccessory).Return([]domain.ItemTemplate{}, nil)

	details, err := svc.GetPoolDetails(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Starter", details.Pool.Name)
	assert.Len(t, details.Pool.Items, 4)

	names := make([]string, 0, len(details.Items))
	for _, item := range details.Items {
		names = append(names, item.ItemName)
	}
	assert.Equal(t, []string{"Bamboo Rod", "1,500 coins", UnknownItemName, UnknownItemName}, names)
	assert.Equal(t, rods, details.AllRods)
	assert.Empty(t, details.AllBaits)

	gacha.On("GetPool", ctx, 2).Return(nil, nil)
	_, err = svc.GetPoolDetails(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrPoolNotFound)
}

func TestPools(t *testing.T) {
	svc, _, gacha := newTestService()
	ctx := context.Background()

	gacha.On("CreatePool", ctx, mock.AnythingOfType("*domain.GachaPool")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.GachaPool).ID = 3
	}).Return(nil)
	gacha.On("UpdatePool", ctx, mock.MatchedBy(func(p domain.GachaPool) bool { return p.ID == 4 })).Return(domain.ErrPoolNotFound)
	gacha.On("DeletePool", ctx, 3).Return(nil)

	pool, err := svc.CreatePool(ctx, PoolInput{Name: "Premium", CostPremiumCurrency: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, pool.ID)
	assert.Equal(t, 10, pool.CostPremiumCurrency)

	_, err = svc.CreatePool(ctx, PoolInput{Name: "Bad", CostCoins: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.UpdatePool(ctx, 4, PoolInput{Name: "Gone"})
	assert.ErrorIs(t, err, domain.ErrPoolNotFound)

	assert.NoError(t, svc.DeletePool(ctx, 3))
}

func TestAddPoolItem(t *testing.T) {
	ctx := context.Background()

	t.Run("coins ignore item id", func(t *testing.T) {
		svc, _, gacha := newTestService()
		gacha.On("AddPoolItem", ctx, mock.MatchedBy(func(item *domain.GachaPoolItem) bool {
			return item.PoolID == 1 && item.ItemType == domain.PoolItemCoins && item.ItemID == 0
		})).Return(nil)

		item, err := svc.AddPoolItem(ctx, 1, PoolItemInput{ItemType: domain.PoolItemCoins, ItemID: 99, Quantity: 100, Weight: 3})
		require.NoError(t, err)
		assert.Zero(t, item.ItemID)
		gacha.AssertExpectations(t)
	})

	t.Run("unknown template", func(t *testing.T) {
		svc, templates, gacha := newTestService()
		templates.On("GetByKindAndID", ctx, domain.ItemKindBait, 5).Return(nil, nil)

		_, err := svc.AddPoolItem(ctx, 1, PoolItemInput{ItemType: domain.PoolItemBait, ItemID: 5, Quantity: 1, Weight: 1})
		assert.ErrorIs(t, err, domain.ErrInvalidPoolItem)
		gacha.AssertNotCalled(t, "AddPoolItem", mock.Anything, mock.Anything)
	})

	t.Run("bad type", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.AddPoolItem(ctx, 1, PoolItemInput{ItemType: "boat", Quantity: 1, Weight: 1})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing pool", func(t *testing.T) {
		svc, templates, gacha := newTestService()
		templates.On("GetByKindAndID", ctx, domain.ItemKindRod, 1).Return(&domain.ItemTemplate{ID: 1}, nil)
		gacha.On("AddPoolItem", ctx, mock.Anything).Return(domain.ErrPoolNotFound)

		_, err := svc.AddPoolItem(ctx, 8, PoolItemInput{ItemType: domain.PoolItemRod, ItemID: 1, Quantity: 1, Weight: 1})
		assert.ErrorIs(t, err, domain.ErrPoolNotFound)
	})
}

func TestUpdatePoolItem(t *testing.T) {
	svc, templates, gacha := newTestService()
	ctx := context.Background()

	gacha.On("GetPoolItem", ctx, 1).Return(&domain.GachaPoolItem{ID: 1, PoolID: 4, ItemType: domain.PoolItemCoins, Quantity: 5, Weight: 1}, nil)
	gacha.On("GetPoolItem", ctx, 2).Return(nil, nil)
	templates.On("GetByKindAndID", ctx, domain.ItemKindFish, 3).Return(&domain.ItemTemplate{ID: 3}, nil)
	gacha.On("UpdatePoolItem", ctx, mock.MatchedBy(func(item domain.GachaPoolItem) bool {
		return item.ID == 1 && item.PoolID == 4 && item.ItemType == domain.PoolItemFish && item.ItemID == 3
	})).Return(nil)

	item, err := svc.UpdatePoolItem(ctx, 1, PoolItemInput{ItemType: domain.PoolItemFish, ItemID: 3, Quantity: 2, Weight: 7})
	require.NoError(t, err)
	assert.Equal(t, 4, item.PoolID, "pool is kept")
	assert.Equal(t, 7, item.Weight)

	_, err = svc.UpdatePoolItem(ctx, 2, PoolItemInput{ItemType: domain.PoolItemCoins, Quantity: 1, Weight: 1})
	assert.ErrorIs(t, err, domain.ErrPoolItemNotFound)

	gacha.On("DeletePoolItem", ctx, 2).Return(domain.ErrPoolItemNotFound)
	assert.ErrorIs(t, svc.DeletePoolItem(ctx, 2), domain.ErrPoolItemNotFound)
}
