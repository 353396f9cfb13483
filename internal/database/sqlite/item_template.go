package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

const templateColumns = `template_id, kind, name, description, rarity, price`

// ItemTemplateRepository implements the item catalog for SQLite
type ItemTemplateRepository struct {
	db *sql.DB
}

// NewItemTemplateRepository creates a new ItemTemplateRepository
func NewItemTemplateRepository(db *sql.DB) *ItemTemplateRepository {
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

func (r *ItemTemplateRepository) GetByKindAndID(ctx context.Context, kind domain.ItemKind, id int) (*domain.ItemTemplate, error) {
	t, err := scanTemplate(r.db.QueryRowContext(ctx,
		`SELECT `+templateColumns+` FROM item_templates WHERE kind = ? AND template_id = ?`, string(kind), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTemplate, err)
	}
	return t, nil
}

func (r *ItemTemplateRepository) ListByKind(ctx context.Context, kind domain.ItemKind) ([]domain.ItemTemplate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+templateColumns+` FROM item_templates WHERE kind = ? ORDER BY template_id`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTemplates, err)
	}
	defer rows.Close()

	templates := []domain.ItemTemplate{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTemplates, err)
		}
		templates = append(templates, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTemplates, err)
	}
	return templates, nil
}

func (r *ItemTemplateRepository) Create(ctx context.Context, tmpl *domain.ItemTemplate) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO item_templates (kind, template_id, name, description, rarity, price)
		SELECT ?, COALESCE(MAX(template_id), 0) + 1, ?, ?, ?, ?
		FROM item_templates WHERE kind = ?
		RETURNING template_id
	`, string(tmpl.Kind), tmpl.Name, tmpl.Description, tmpl.Rarity, tmpl.Price, string(tmpl.Kind)).Scan(&tmpl.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateTemplate, err)
	}
	return nil
}

func (r *ItemTemplateRepository) Update(ctx context.Context, tmpl domain.ItemTemplate) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE item_templates SET name = ?, description = ?, rarity = ?, price = ?
		WHERE kind = ? AND template_id = ?
	`, tmpl.Name, tmpl.Description, tmpl.Rarity, tmpl.Price, string(tmpl.Kind), tmpl.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateTemplate, err)
	}
	return requireRow(res, domain.ErrTemplateNotFound, ErrMsgFailedToUpdateTemplate)
}

func (r *ItemTemplateRepository) Delete(ctx context.Context, kind domain.ItemKind, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM item_templates WHERE kind = ? AND template_id = ?`, string(kind), id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteTemplate, err)
	}
	return requireRow(res, domain.ErrTemplateNotFound, ErrMsgFailedToDeleteTemplate)
}

// Upsert inserts or replaces a template with a fixed id
func (r *ItemTemplateRepository) Upsert(ctx context.Context, tmpl domain.ItemTemplate) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM item_templates WHERE kind = ? AND template_id = ?)`,
		string(tmpl.Kind), tmpl.ID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertTemplate, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO item_templates (kind, template_id, name, description, rarity, price)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (kind, template_id) DO UPDATE
		SET name = excluded.name, description = excluded.description,
			rarity = excluded.rarity, price = excluded.price
	`, string(tmpl.Kind), tmpl.ID, tmpl.Name, tmpl.Description, tmpl.Rarity, tmpl.Price)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertTemplate, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return !exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (*domain.ItemTemplate, error) {
	var (
		t    domain.ItemTemplate
		kind string
	)
	if err := row.Scan(&t.ID, &kind, &t.Name, &t.Description, &t.Rarity, &t.Price); err != nil {
		return nil, err
	}
	t.Kind = domain.ItemKind(kind)
	return &t, nil
}

// requireRow maps a zero-row write onto notFound
func requireRow(res sql.Result, notFound error, msg string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", msg, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
