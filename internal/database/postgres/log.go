package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// LogRepository implements the check-in and tax ledgers for PostgreSQL
type LogRepository struct {
	db *pgxpool.Pool
}

// NewLogRepository creates a new LogRepository
func NewLogRepository(db *pgxpool.Pool) *LogRepository {
	return &LogRepository{db: db}
}

// HasCheckedIn reports whether the user has a check-in on day
func (r *LogRepository) HasCheckedIn(ctx context.Context, userID string, day time.Time) (bool, error) {
	return hasCheckedIn(ctx, r.db, userID, day)
}

// AddCheckIn records a check-in for day
func (r *LogRepository) AddCheckIn(ctx context.Context, userID string, day time.Time) error {
	return addCheckIn(ctx, r.db, userID, day)
}

// GetTaxRecords returns the user's tax ledger in chronological order
func (r *LogRepository) GetTaxRecords(ctx context.Context, userID string) ([]domain.TaxRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT tax_id, user_id, tax_amount, tax_type, created_at
		FROM taxes
		WHERE user_id = $1
		ORDER BY created_at, tax_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTaxRecords, err)
	}
	defer rows.Close()

	records := []domain.TaxRecord{}
	for rows.Next() {
		var rec domain.TaxRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Amount, &rec.TaxType, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTaxRecords, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTaxRecords, err)
	}
	return records, nil
}

func hasCheckedIn(ctx context.Context, q querier, userID string, day time.Time) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM check_ins WHERE user_id = $1 AND check_in_date = $2)
	`, userID, day).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckCheckIn, err)
	}
	return exists, nil
}

func addCheckIn(ctx context.Context, q querier, userID string, day time.Time) error {
	_, err := q.Exec(ctx, `INSERT INTO check_ins (user_id, check_in_date) VALUES ($1, $2)`, userID, day)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyCheckedIn
		}
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToAddCheckIn, err)
	}
	return nil
}
