package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

const userColumns = `user_id, nickname, coins, premium_currency, consecutive_login_days,
	last_login_time, current_title_id, created_at`

// UserRepository implements the user repository for SQLite
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CheckExists(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = ?)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckUser, err)
	}
	return exists, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return getUser(ctx, r.db, userID)
}

func (r *UserRepository) Add(ctx context.Context, user domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (user_id, nickname, coins, premium_currency, consecutive_login_days,
			last_login_time, current_title_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, user.ID, user.Nickname, user.Coins, user.PremiumCurrency, user.ConsecutiveLoginDays,
		nullMillis(user.LastLoginTime), nullInt(user.CurrentTitleID), toMillis(user.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) error {
	return updateUser(ctx, r.db, user)
}

func (r *UserRepository) GetLeaderboardData(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.user_id, u.nickname, u.coins, COALESCE(t.name, '')
		FROM users u
		LEFT JOIN item_templates t ON t.kind = 'title' AND t.template_id = u.current_title_id
		ORDER BY u.coins DESC, u.user_id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLeaderboard, err)
	}
	defer rows.Close()

	entries := []domain.LeaderboardEntry{}
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Nickname, &e.Coins, &e.Title); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLeaderboard, err)
		}
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLeaderboard, err)
	}
	return entries, nil
}

func getUser(ctx context.Context, q querier, userID string) (*domain.User, error) {
	var (
		u         domain.User
		lastLogin sql.NullInt64
		titleID   sql.NullInt64
		createdAt int64
	)
	err := q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = ?`, userID).Scan(
		&u.ID, &u.Nickname, &u.Coins, &u.PremiumCurrency, &u.ConsecutiveLoginDays,
		&lastLogin, &titleID, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}

	u.CreatedAt = fromMillis(createdAt)
	if lastLogin.Valid {
		t := fromMillis(lastLogin.Int64)
		u.LastLoginTime = &t
	}
	if titleID.Valid {
		id := int(titleID.Int64)
		u.CurrentTitleID = &id
	}
	return &u, nil
}

func updateUser(ctx context.Context, q querier, user domain.User) error {
	res, err := q.ExecContext(ctx, `
		UPDATE users
		SET nickname = ?, coins = ?, premium_currency = ?, consecutive_login_days = ?,
			last_login_time = ?, current_title_id = ?
		WHERE user_id = ?
	`, user.Nickname, user.Coins, user.PremiumCurrency, user.ConsecutiveLoginDays,
		nullMillis(user.LastLoginTime), nullInt(user.CurrentTitleID), user.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUser, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUser, err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
