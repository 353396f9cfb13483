package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

const userColumns = `user_id, nickname, coins, premium_currency, consecutive_login_days,
	last_login_time, current_title_id, created_at`

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CheckExists reports whether a user id is registered
func (r *UserRepository) CheckExists(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckUser, err)
	}
	return exists, nil
}

// GetByID returns the user or nil when absent
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return getUser(ctx, r.db, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
}

// Add inserts a new user
func (r *UserRepository) Add(ctx context.Context, user domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (user_id, nickname, coins, premium_currency, consecutive_login_days,
			last_login_time, current_title_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, user.ID, user.Nickname, user.Coins, user.PremiumCurrency, user.ConsecutiveLoginDays,
		user.LastLoginTime, user.CurrentTitleID, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	return nil
}

// Update overwrites the mutable user columns
func (r *UserRepository) Update(ctx context.Context, user domain.User) error {
	return updateUser(ctx, r.db, user)
}

// GetLeaderboardData returns users ordered by coins, richest first
func (r *UserRepository) GetLeaderboardData(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.user_id, u.nickname, u.coins, COALESCE(t.name, '')
		FROM users u
		LEFT JOIN item_templates t ON t.kind = 'title' AND t.template_id = u.current_title_id
		ORDER BY u.coins DESC, u.user_id
		LIMIT $1
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

func getUser(ctx context.Context, q querier, query, userID string) (*domain.User, error) {
	var u domain.User
	err := q.QueryRow(ctx, query, userID).Scan(
		&u.ID, &u.Nickname, &u.Coins, &u.PremiumCurrency, &u.ConsecutiveLoginDays,
		&u.LastLoginTime, &u.CurrentTitleID, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return &u, nil
}

func updateUser(ctx context.Context, q querier, user domain.User) error {
	tag, err := q.Exec(ctx, `
		UPDATE users
		SET nickname = $2, coins = $3, premium_currency = $4, consecutive_login_days = $5,
			last_login_time = $6, current_title_id = $7
		WHERE user_id = $1
	`, user.ID, user.Nickname, user.Coins, user.PremiumCurrency, user.ConsecutiveLoginDays,
		user.LastLoginTime, user.CurrentTitleID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUser, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
