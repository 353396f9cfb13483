package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// LogRepository implements the check-in and tax ledgers for SQLite
type LogRepository struct {
	db *sql.DB
}

// NewLogRepository creates a new LogRepository
func NewLogRepository(db *sql.DB) *LogRepository {
	return &LogRepository{db: db}
}

func (r *LogRepository) HasCheckedIn(ctx context.Context, userID string, day time.Time) (bool, error) {
	return hasCheckedIn(ctx, r.db, userID, day)
}

func (r *LogRepository) AddCheckIn(ctx context.Context, userID string, day time.Time) error {
	return addCheckIn(ctx, r.db, userID, day)
}

func (r *LogRepository) GetTaxRecords(ctx context.Context, userID string) ([]domain.TaxRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT tax_id, user_id, tax_amount, tax_type, created_at
		FROM taxes
		WHERE user_id = ?
		ORDER BY created_at, tax_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTaxRecords, err)
	}
	defer rows.Close()

	records := []domain.TaxRecord{}
	for rows.Next() {
		var (
			rec domain.TaxRecord
			ts  int64
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Amount, &rec.TaxType, &ts); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTaxRecords, err)
		}
		rec.Timestamp = fromMillis(ts)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTaxRecords, err)
	}
	return records, nil
}

func hasCheckedIn(ctx context.Context, q querier, userID string, day time.Time) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM check_ins WHERE user_id = ? AND check_in_date = ?)
	`, userID, dayKey(day)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckCheckIn, err)
	}
	return exists, nil
}

func addCheckIn(ctx context.Context, q querier, userID string, day time.Time) error {
	_, err := q.ExecContext(ctx, `INSERT INTO check_ins (user_id, check_in_date, created_at) VALUES (?, ?, ?)`,
		userID, dayKey(day), toMillis(time.Now()))
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
