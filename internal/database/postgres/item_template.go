package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

const templateColumns = `template_id, kind, name, description, rarity, price`

// ItemTemplateRepository implements the item catalog for PostgreSQL
type ItemTemplateRepository struct {
	db *pgxpool.Pool
}

// NewItemTemplateRepository creates a new ItemTemplateRepository
func NewItemTemplateRepository(db *pgxpool.Pool) *ItemTemplateRepository {
	return &ItemTemplateRepository{db: db}
}

func (r *ItemTemplateRepository) GetAccessoryByID(ctx context.Context, id int) (*domain.ItemTemplate, error) {
	return r.GetByKindAndID(ctx, domain.ItemKindAccessory, id)
}

func (r *ItemTemplateRepository) GetTitleByID(ctx context.Context, id int) (*domain.ItemTemplate, error) {
	return r.GetByKindAndID(ctx, domain.ItemKindTitle, id)
}

func (r *ItemTemplateRepository) GetRodByID(ctx context.Context, id int) (*domain.ItemTemplate, error) {
	return r.GetByKindAndID(ctx, domain.ItemKindRod, id)
}

func (r *ItemTemplateRepository) GetBaitByID(ctx context.Context, id int) (*domain.ItemTemplate, error) {
	return r.GetByKindAndID(ctx, domain.ItemKindBait, id)
}

func (r *ItemTemplateRepository) GetFishByID(ctx context.Context, id int) (*domain.ItemTemplate, error) {
	return r.GetByKindAndID(ctx, domain.ItemKindFish, id)
}

// GetByKindAndID returns a template or nil when absent
func (r *ItemTemplateRepository) GetByKindAndID(ctx context.Context, kind domain.ItemKind, id int) (*domain.ItemTemplate, error) {
	var t domain.ItemTemplate
	err := r.db.QueryRow(ctx, `SELECT `+templateColumns+` FROM item_templates WHERE kind = $1 AND template_id = $2`,
		string(kind), id).Scan(&t.ID, &t.Kind, &t.Name, &t.Description, &t.Rarity, &t.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTemplate, err)
	}
	return &t, nil
}

// ListByKind returns every template of a kind ordered by id
func (r *ItemTemplateRepository) ListByKind(ctx context.Context, kind domain.ItemKind) ([]domain.ItemTemplate, error) {
	rows, err := r.db.Query(ctx, `SELECT `+templateColumns+` FROM item_templates WHERE kind = $1 ORDER BY template_id`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTemplates, err)
	}
	defer rows.Close()

	templates := []domain.ItemTemplate{}
	for rows.Next() {
		var t domain.ItemTemplate
		if err := rows.Scan(&t.ID, &t.Kind, &t.Name, &t.Description, &t.Rarity, &t.Price); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTemplates, err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTemplates, err)
	}
	return templates, nil
}

// Create inserts a template with the next free id for its kind
func (r *ItemTemplateRepository) Create(ctx context.Context, tmpl *domain.ItemTemplate) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO item_templates (kind, template_id, name, description, rarity, price)
		SELECT $1::text, COALESCE(MAX(template_id), 0) + 1, $2::text, $3::text, $4::int, $5::int
		FROM item_templates WHERE kind = $1::text
		RETURNING template_id
	`, string(tmpl.Kind), tmpl.Name, tmpl.Description, tmpl.Rarity, tmpl.Price).Scan(&tmpl.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateTemplate, err)
	}
	return nil
}

// Update overwrites a template's display fields
func (r *ItemTemplateRepository) Update(ctx context.Context, tmpl domain.ItemTemplate) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE item_templates SET name = $3, description = $4, rarity = $5, price = $6
		WHERE kind = $1 AND template_id = $2
	`, string(tmpl.Kind), tmpl.ID, tmpl.Name, tmpl.Description, tmpl.Rarity, tmpl.Price)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateTemplate, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}

// Delete removes a template
func (r *ItemTemplateRepository) Delete(ctx context.Context, kind domain.ItemKind, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM item_templates WHERE kind = $1 AND template_id = $2`, string(kind), id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteTemplate, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}

// Upsert inserts or replaces a template with a fixed id
func (r *ItemTemplateRepository) Upsert(ctx context.Context, tmpl domain.ItemTemplate) (bool, error) {
	var inserted bool
	err := r.db.QueryRow(ctx, `
		INSERT INTO item_templates (kind, template_id, name, description, rarity, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (kind, template_id) DO UPDATE
		SET name = EXCLUDED.name, description = EXCLUDED.description,
			rarity = EXCLUDED.rarity, price = EXCLUDED.price
		RETURNING (xmax = 0)
	`, string(tmpl.Kind), tmpl.ID, tmpl.Name, tmpl.Description, tmpl.Rarity, tmpl.Price).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertTemplate, err)
	}
	return inserted, nil
}
