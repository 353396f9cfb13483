package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/FishingBot_Go/internal/catalog"
	"github.com/osse101/FishingBot_Go/internal/domain"
)

func newAdminRouter(svc catalog.Service) http.Handler {
	r := chi.NewRouter()
	r.Route("/admin/templates/{kind}", func(r chi.Router) {
		r.Get("/", HandleListTemplates(svc))
		r.Post("/", HandleCreateTemplate(svc))
		r.Get("/{id}", HandleGetTemplate(svc))
		r.Put("/{id}", HandleUpdateTemplate(svc))
		r.Delete("/{id}", HandleDeleteTemplate(svc))
	})
	r.Route("/admin/gacha", func(r chi.Router) {
		r.Get("/", HandleListPools(svc))
		r.Post("/", HandleCreatePool(svc))
		r.Put("/items/{itemID}", HandleUpdatePoolItem(svc))
		r.Delete("/items/{itemID}", HandleDeletePoolItem(svc))
		r.Get("/{poolID}", HandleGetPool(svc))
		r.Put("/{poolID}", HandleUpdatePool(svc))
		r.Delete("/{poolID}", HandleDeletePool(svc))
		r.Post("/{poolID}/items", HandleAddPoolItem(svc))
	})
	return r
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestTemplateHandlers(t *testing.T) {
	rod := &domain.ItemTemplate{ID: 3, Kind: domain.ItemKindRod, Name: "Carbon Rod", Rarity: 4, Price: 900}
	input := catalog.TemplateInput{Name: "Carbon Rod", Rarity: 4, Price: 900}

	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		setupMock      func(*MockCatalogService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "list accepts plural kind",
			method: http.MethodGet,
			target: "/admin/templates/rods/",
			setupMock: func(m *MockCatalogService) {
				m.On("ListTemplates", mock.Anything, domain.ItemKindRod).Return([]domain.ItemTemplate{*rod}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Carbon Rod"`,
		},
		{
			name:           "unknown kind",
			method:         http.MethodGet,
			target:         "/admin/templates/boats/",
			setupMock:      func(m *MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidItemKind,
		},
		{
			name:   "get",
			method: http.MethodGet,
			target: "/admin/templates/rod/3",
			setupMock: func(m *MockCatalogService) {
				m.On("GetTemplate", mock.Anything, domain.ItemKindRod, 3).Return(rod, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":3`,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			target: "/admin/templates/rod/99",
			setupMock: func(m *MockCatalogService) {
				m.On("GetTemplate", mock.Anything, domain.ItemKindRod, 99).Return(nil, domain.ErrTemplateNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgTemplateNotFound,
		},
		{
			name:           "bad id",
			method:         http.MethodGet,
			target:         "/admin/templates/rod/abc",
			setupMock:      func(m *MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   fmt.Sprintf(ErrMsgInvalidParam, URLParamID),
		},
		{
			name:   "create",
			method: http.MethodPost,
			target: "/admin/templates/rod/",
			body:   `{"name":"Carbon Rod","rarity":4,"price":900}`,
			setupMock: func(m *MockCatalogService) {
				m.On("CreateTemplate", mock.Anything, domain.ItemKindRod, input).Return(rod, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"kind":"rod"`,
		},
		{
			name:           "create rejects rarity out of range",
			method:         http.MethodPost,
			target:         "/admin/templates/rod/",
			body:           `{"name":"Carbon Rod","rarity":11,"price":900}`,
			setupMock:      func(m *MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"rarity":"Must be at most 10"`,
		},
		{
			name:   "update",
			method: http.MethodPut,
			target: "/admin/templates/rod/3",
			body:   `{"name":"Carbon Rod","rarity":4,"price":900}`,
			setupMock: func(m *MockCatalogService) {
				m.On("UpdateTemplate", mock.Anything, domain.ItemKindRod, 3, input).Return(rod, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/admin/templates/rod/3",
			setupMock: func(m *MockCatalogService) {
				m.On("DeleteTemplate", mock.Anything, domain.ItemKindRod, 3).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgTemplateDeleted,
		},
		{
			name:   "fault hides details",
			method: http.MethodDelete,
			target: "/admin/templates/rod/3",
			setupMock: func(m *MockCatalogService) {
				m.On("DeleteTemplate", mock.Anything, domain.ItemKindRod, 3).Return(errors.New("disk on fire"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCatalogService{}
			tt.setupMock(svc)

			w := serve(newAdminRouter(svc), tt.method, tt.target, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.NotContains(t, w.Body.String(), "disk on fire")
			svc.AssertExpectations(t)
		})
	}
}

func TestGachaHandlers(t *testing.T) {
	pool := &domain.GachaPool{ID: 1, Name: "Starter", CostCoins: 100}
	poolInput := catalog.PoolInput{Name: "Starter", CostCoins: 100}
	itemInput := catalog.PoolItemInput{ItemType: domain.PoolItemCoins, Quantity: 500, Weight: 10}
	item := &domain.GachaPoolItem{ID: 7, PoolID: 1, ItemType: domain.PoolItemCoins, Quantity: 500, Weight: 10}

	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		setupMock      func(*MockCatalogService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "list",
			method: http.MethodGet,
			target: "/admin/gacha/",
			setupMock: func(m *MockCatalogService) {
				m.On("ListPools", mock.Anything).Return([]domain.GachaPool{*pool}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"pool_id":1`,
		},
		{
			name:   "create",
			method: http.MethodPost,
			target: "/admin/gacha/",
			body:   `{"name":"Starter","cost_coins":100}`,
			setupMock: func(m *MockCatalogService) {
				m.On("CreatePool", mock.Anything, poolInput).Return(pool, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "details",
			method: http.MethodGet,
			target: "/admin/gacha/1",
			setupMock: func(m *MockCatalogService) {
				m.On("GetPoolDetails", mock.Anything, 1).Return(&domain.PoolDetails{
					Pool:  *pool,
					Items: []domain.EnrichedPoolItem{{GachaPoolItem: *item, ItemName: "500 coins"}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"item_name":"500 coins"`,
		},
		{
			name:   "details missing pool",
			method: http.MethodGet,
			target: "/admin/gacha/9",
			setupMock: func(m *MockCatalogService) {
				m.On("GetPoolDetails", mock.Anything, 9).Return(nil, domain.ErrPoolNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgPoolNotFound,
		},
		{
			name:   "update",
			method: http.MethodPut,
			target: "/admin/gacha/1",
			body:   `{"name":"Starter","cost_coins":100}`,
			setupMock: func(m *MockCatalogService) {
				m.On("UpdatePool", mock.Anything, 1, poolInput).Return(pool, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/admin/gacha/1",
			setupMock: func(m *MockCatalogService) {
				m.On("DeletePool", mock.Anything, 1).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgPoolDeleted,
		},
		{
			name:   "add item",
			method: http.MethodPost,
			target: "/admin/gacha/1/items",
			body:   `{"item_type":"coins","quantity":500,"weight":10}`,
			setupMock: func(m *MockCatalogService) {
				m.On("AddPoolItem", mock.Anything, 1, itemInput).Return(item, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"gacha_pool_item_id":7`,
		},
		{
			name:           "add item with unknown type",
			method:         http.MethodPost,
			target:         "/admin/gacha/1/items",
			body:           `{"item_type":"boat","quantity":1,"weight":1}`,
			setupMock:      func(m *MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"item_type"`,
		},
		{
			name:   "add item referencing missing template",
			method: http.MethodPost,
			target: "/admin/gacha/1/items",
			body:   `{"item_type":"rod","item_id":42,"quantity":1,"weight":1}`,
			setupMock: func(m *MockCatalogService) {
				m.On("AddPoolItem", mock.Anything, 1, catalog.PoolItemInput{ItemType: "rod", ItemID: 42, Quantity: 1, Weight: 1}).
					Return(nil, fmt.Errorf("%w: rod 42", domain.ErrInvalidPoolItem))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidPoolItem,
		},
		{
			name:   "update item",
			method: http.MethodPut,
			target: "/admin/gacha/items/7",
			body:   `{"item_type":"coins","quantity":500,"weight":10}`,
			setupMock: func(m *MockCatalogService) {
				m.On("UpdatePoolItem", mock.Anything, 7, itemInput).Return(item, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete missing item",
			method: http.MethodDelete,
			target: "/admin/gacha/items/8",
			setupMock: func(m *MockCatalogService) {
				m.On("DeletePoolItem", mock.Anything, 8).Return(domain.ErrPoolItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgPoolItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCatalogService{}
			tt.setupMock(svc)

			w := serve(newAdminRouter(svc), tt.method, tt.target, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
