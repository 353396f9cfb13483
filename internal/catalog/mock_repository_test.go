package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// MockTemplates is a mock implementation of repository.ItemTemplate
type MockTemplates struct {
	mock.Mock
}

func (m *MockTemplates) template(args mock.Arguments) (*domain.ItemTemplate, error) {
	t, _ := args.Get(0).(*domain.ItemTemplate)
	return t, args.Error(1)
}

func (m *MockTemplates) GetAccessoryByID(ctx context.Context, id int) (*domain.ItemTemplate, error) {
	return m.template(m.Called(ctx, id))
}

func (m *MockTemplates) GetTitleByID(ctx context.Context, id int) (*domain.ItemTemplate, error) {
	return m.template(m.Called(ctx, id))
}

func (m *MockTemplates) GetRodByID(ctx context.Context, id int) (*domain.ItemTemplate, error) {
	return m.template(m.Called(ctx, id))
}

func (m *MockTemplates) GetBaitByID(ctx context.Context, id int) (*domain.ItemTemplate, error) {
	return m.template(m.Called(ctx, id))
}

func (m *MockTemplates) GetFishByID(ctx context.Context, id int) (*domain.ItemTemplate, error) {
	return m.template(m.Called(ctx, id))
}

func (m *MockTemplates) GetByKindAndID(ctx context.Context, kind domain.ItemKind, id int) (*domain.ItemTemplate, error) {
	return m.template(m.Called(ctx, kind, id))
}

func (m *MockTemplates) ListByKind(ctx context.Context, kind domain.ItemKind) ([]domain.ItemTemplate, error) {
	args := m.Called(ctx, kind)
	list, _ := args.Get(0).([]domain.ItemTemplate)
	return list, args.Error(1)
}

func (m *MockTemplates) Create(ctx context.Context, tmpl *domain.ItemTemplate) error {
	return m.Called(ctx, tmpl).Error(0)
}

func (m *MockTemplates) Update(ctx context.Context, tmpl domain.ItemTemplate) error {
	return m.Called(ctx, tmpl).Error(0)
}

func (m *MockTemplates) Delete(ctx context.Context, kind domain.ItemKind, id int) error {
	return m.Called(ctx, kind, id).Error(0)
}

func (m *MockTemplates) Upsert(ctx context.Context, tmpl domain.ItemTemplate) (bool, error) {
	args := m.Called(ctx, tmpl)
	return args.Bool(0), args.Error(1)
}

// MockGacha is a mock implementation of repository.Gacha
type MockGacha struct {
	mock.Mock
}

func (m *MockGacha) ListPools(ctx context.Context) ([]domain.GachaPool, error) {
	args := m.Called(ctx)
	pools, _ := args.Get(0).([]domain.GachaPool)
	return pools, args.Error(1)
}

func (m *MockGacha) GetPool(ctx context.Context, poolID int) (*domain.GachaPool, error) {
	args := m.Called(ctx, poolID)
	p, _ := args.Get(0).(*domain.GachaPool)
	return p, args.Error(1)
}

func (m *MockGacha) CreatePool(ctx context.Context, pool *domain.GachaPool) error {
	return m.Called(ctx, pool).Error(0)
}

func (m *MockGacha) UpdatePool(ctx context.Context, pool domain.GachaPool) error {
	return m.Called(ctx, pool).Error(0)
}

func (m *MockGacha) DeletePool(ctx context.Context, poolID int) error {
	return m.Called(ctx, poolID).Error(0)
}

func (m *MockGacha) ListPoolItems(ctx context.Context, poolID int) ([]domain.GachaPoolItem, error) {
	args := m.Called(ctx, poolID)
	items, _ := args.Get(0).([]domain.GachaPoolItem)
	return items, args.Error(1)
}

func (m *MockGacha) GetPoolItem(ctx context.Context, itemID int) (*domain.GachaPoolItem, error) {
	args := m.Called(ctx, itemID)
	item, _ := args.Get(0).(*domain.GachaPoolItem)
	return item, args.Error(1)
}

func (m *MockGacha) AddPoolItem(ctx context.Context, item *domain.GachaPoolItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockGacha) UpdatePoolItem(ctx context.Context, item domain.GachaPoolItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockGacha) DeletePoolItem(ctx context.Context, itemID int) error {
	return m.Called(ctx, itemID).Error(0)
}
