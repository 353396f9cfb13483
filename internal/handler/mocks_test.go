package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/FishingBot_Go/internal/catalog"
	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/user"
)

// MockUserService mocks user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, userID, nickname string) (domain.Result, error) {
	args := m.Called(ctx, userID, nickname)
	return args.Get(0).(domain.Result), args.Error(1)
}

func (m *MockUserService) DailySignIn(ctx context.Context, userID string) (user.SignInResult, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(user.SignInResult), args.Error(1)
}

func (m *MockUserService) GetUserCurrentAccessory(ctx context.Context, userID string) (user.AccessoryResult, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(user.AccessoryResult), args.Error(1)
}

func (m *MockUserService) GetUserTitles(ctx context.Context, userID string) (user.TitlesResult, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(user.TitlesResult), args.Error(1)
}

func (m *MockUserService) UseTitle(ctx context.Context, userID string, titleID int) (domain.Result, error) {
	args := m.Called(ctx, userID, titleID)
	return args.Get(0).(domain.Result), args.Error(1)
}

func (m *MockUserService) GetUserCurrency(ctx context.Context, userID string) (user.CurrencyResult, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(user.CurrencyResult), args.Error(1)
}

func (m *MockUserService) ModifyUserCoins(ctx context.Context, userID string, amount int) (domain.Result, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(domain.Result), args.Error(1)
}

func (m *MockUserService) GetTaxRecord(ctx context.Context, userID string) (user.TaxRecordsResult, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(user.TaxRecordsResult), args.Error(1)
}

func (m *MockUserService) GetLeaderboard(ctx context.Context, limit int) (user.LeaderboardResult, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).(user.LeaderboardResult), args.Error(1)
}

// MockCatalogService mocks catalog.Service
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListTemplates(ctx context.Context, kind domain.ItemKind) ([]domain.ItemTemplate, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemTemplate), args.Error(1)
}

func (m *MockCatalogService) GetTemplate(ctx context.Context, kind domain.ItemKind, id int) (*domain.ItemTemplate, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemTemplate), args.Error(1)
}

func (m *MockCatalogService) CreateTemplate(ctx context.Context, kind domain.ItemKind, in catalog.TemplateInput) (*domain.ItemTemplate, error) {
	args := m.Called(ctx, kind, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemTemplate), args.Error(1)
}

func (m *MockCatalogService) UpdateTemplate(ctx context.Context, kind domain.ItemKind, id int, in catalog.TemplateInput) (*domain.ItemTemplate, error) {
	args := m.Called(ctx, kind, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemTemplate), args.Error(1)
}

func (m *MockCatalogService) DeleteTemplate(ctx context.Context, kind domain.ItemKind, id int) error {
	return m.Called(ctx, kind, id).Error(0)
}

func (m *MockCatalogService) ListPools(ctx context.Context) ([]domain.GachaPool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GachaPool), args.Error(1)
}

func (m *MockCatalogService) CreatePool(ctx context.Context, in catalog.PoolInput) (*domain.GachaPool, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GachaPool), args.Error(1)
}

func (m *MockCatalogService) UpdatePool(ctx context.Context, poolID int, in catalog.PoolInput) (*domain.GachaPool, error) {
	args := m.Called(ctx, poolID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GachaPool), args.Error(1)
}

func (m *MockCatalogService) DeletePool(ctx context.Context, poolID int) error {
	return m.Called(ctx, poolID).Error(0)
}

func (m *MockCatalogService) GetPoolDetails(ctx context.Context, poolID int) (*domain.PoolDetails, error) {
	args := m.Called(ctx, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PoolDetails), args.Error(1)
}

func (m *MockCatalogService) AddPoolItem(ctx context.Context, poolID int, in catalog.PoolItemInput) (*domain.GachaPoolItem, error) {
	args := m.Called(ctx, poolID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GachaPoolItem), args.Error(1)
}

func (m *MockCatalogService) UpdatePoolItem(ctx context.Context, itemID int, in catalog.PoolItemInput) (*domain.GachaPoolItem, error) {
	args := m.Called(ctx, itemID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GachaPoolItem), args.Error(1)
}

func (m *MockCatalogService) DeletePoolItem(ctx context.Context, itemID int) error {
	return m.Called(ctx, itemID).Error(0)
}

var (
	_ user.Service    = (*MockUserService)(nil)
	_ catalog.Service = (*MockCatalogService)(nil)
)
