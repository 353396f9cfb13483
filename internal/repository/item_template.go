package repository

import (
	"context"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// ItemTemplate defines the interface for the static item catalog.
// Single-row getters return nil, nil when the template does not exist.
type ItemTemplate interface {
	GetAccessoryByID(ctx context.Context, id int) (*domain.ItemTemplate, error)
	GetTitleByID(ctx context.Context, id int) (*domain.ItemTemplate, error)
	GetRodByID(ctx context.Context, id int) (*domain.ItemTemplate, error)
	GetBaitByID(ctx context.Context, id int) (*domain.ItemTemplate, error)
	GetFishByID(ctx context.Context, id int) (*domain.ItemTemplate, error)
	GetByKindAndID(ctx context.Context, kind domain.ItemKind, id int) (*domain.ItemTemplate, error)

	ListByKind(ctx context.Context, kind domain.ItemKind) ([]domain.ItemTemplate, error)
	// Create assigns tmpl.ID
	Create(ctx context.Context, tmpl *domain.ItemTemplate) error
	// Update and Delete return domain.ErrTemplateNotFound when no row matches
	Update(ctx context.Context, tmpl domain.ItemTemplate) error
	Delete(ctx context.Context, kind domain.ItemKind, id int) error
	// Upsert writes a template with a fixed id and reports whether it was inserted
	Upsert(ctx context.Context, tmpl domain.ItemTemplate) (bool, error)
}
