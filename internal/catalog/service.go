package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"golang.org/x/text/language"

	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/logger"
	"github.com/osse101/FishingBot_Go/internal/repository"
)

// Service manages the item catalog and gacha pools for administrators
type Service interface {
	ListTemplates(ctx context.Context, kind domain.ItemKind) ([]domain.ItemTemplate, error)
	GetTemplate(ctx context.Context, kind domain.ItemKind, id int) (*domain.ItemTemplate, error)
	CreateTemplate(ctx context.Context, kind domain.ItemKind, in TemplateInput) (*domain.ItemTemplate, error)
	UpdateTemplate(ctx context.Context, kind domain.ItemKind, id int, in TemplateInput) (*domain.ItemTemplate, error)
	DeleteTemplate(ctx context.Context, kind domain.ItemKind, id int) error

	ListPools(ctx context.Context) ([]domain.GachaPool, error)
	CreatePool(ctx context.Context, in PoolInput) (*domain.GachaPool, error)
	UpdatePool(ctx context.Context, poolID int, in PoolInput) (*domain.GachaPool, error)
	DeletePool(ctx context.Context, poolID int) error
	GetPoolDetails(ctx context.Context, poolID int) (*domain.PoolDetails, error)
	AddPoolItem(ctx context.Context, poolID int, in PoolItemInput) (*domain.GachaPoolItem, error)
	UpdatePoolItem(ctx context.Context, itemID int, in PoolItemInput) (*domain.GachaPoolItem, error)
	DeletePoolItem(ctx context.Context, itemID int) error
}

type service struct {
	templates repository.ItemTemplate
	gacha     repository.Gacha
	lang      language.Tag
	cache     *templateCache
}

// Option configures the catalog service
type Option func(*service)

// WithTemplateCache caches single-template lookups used by GetTemplate and
// pool item name resolution
func WithTemplateCache(size int, ttl time.Duration) Option {
	return func(s *service) {
		s.cache = newTemplateCache(size, ttl)
	}
}

// NewService creates a new catalog service
func NewService(templates repository.ItemTemplate, gacha repository.Gacha, opts ...Option) Service {
	s := &service{
		templates: templates,
		gacha:     gacha,
		lang:      language.English,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// lookupTemplate reads one template through the cache. A missing template
// is returned as nil and never cached.
func (s *service) lookupTemplate(ctx context.Context, kind domain.ItemKind, id int) (*domain.ItemTemplate, error) {
	if t, ok := s.cache.Get(kind, id); ok {
		return t, nil
	}
	t, err := s.templates.GetByKindAndID(ctx, kind, id)
	if err != nil || t == nil {
		return t, err
	}
	s.cache.Set(*t)
	return t, nil
}

func checkKind(kind domain.ItemKind) error {
	if !slices.Contains(domain.ItemKinds, kind) {
		return domain.ErrInvalidItemKind
	}
	return nil
}

// wrap keeps domain sentinels intact and prefixes everything else
func wrap(msg string, err error, sentinels ...error) error {
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return err
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func (s *service) ListTemplates(ctx context.Context, kind domain.ItemKind) ([]domain.ItemTemplate, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	list, err := s.templates.ListByKind(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListTemplatesFailed, err)
	}
	return list, nil
}

func (s *service) GetTemplate(ctx context.Context, kind domain.ItemKind, id int) (*domain.ItemTemplate, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	t, err := s.lookupTemplate(ctx, kind, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetTemplateFailed, err)
	}
	if t == nil {
		return nil, domain.ErrTemplateNotFound
	}
	return t, nil
}

func (s *service) CreateTemplate(ctx context.Context, kind domain.ItemKind, in TemplateInput) (*domain.ItemTemplate, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	t := domain.ItemTemplate{Kind: kind}
	in.apply(&t)
	if err := s.templates.Create(ctx, &t); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateTemplateFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgTemplateCreated, "kind", kind, "id", t.ID)
	return &t, nil
}

func (s *service) UpdateTemplate(ctx context.Context, kind domain.ItemKind, id int, in TemplateInput) (*domain.ItemTemplate, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	t := domain.ItemTemplate{ID: id, Kind: kind}
	in.apply(&t)
	err := s.templates.Update(ctx, t)
	s.cache.Invalidate(kind, id)
	if err != nil {
		return nil, wrap(ErrMsgUpdateTemplateFailed, err, domain.ErrTemplateNotFound)
	}

	logger.FromContext(ctx).Info(LogMsgTemplateUpdated, "kind", kind, "id", id)
	return &t, nil
}

func (s *service) DeleteTemplate(ctx context.Context, kind domain.ItemKind, id int) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	err := s.templates.Delete(ctx, kind, id)
	s.cache.Invalidate(kind, id)
	if err != nil {
		return wrap(ErrMsgDeleteTemplateFailed, err, domain.ErrTemplateNotFound)
	}
	logger.FromContext(ctx).Info(LogMsgTemplateDeleted, "kind", kind, "id", id)
	return nil
}
