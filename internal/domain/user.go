package domain

import "time"

// User represents a registered angler
type User struct {
	ID                   string     `json:"user_id"`
	Nickname             string     `json:"nickname"`
	Coins                int        `json:"coins"`
	PremiumCurrency      int        `json:"premium_currency"`
	ConsecutiveLoginDays int        `json:"consecutive_login_days"`
	LastLoginTime        *time.Time `json:"last_login_time,omitempty"`
	CurrentTitleID       *int       `json:"current_title_id,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// HasCurrentTitle reports whether titleID is the user's selected title
func (u User) HasCurrentTitle(titleID int) bool {
	return u.CurrentTitleID != nil && *u.CurrentTitleID == titleID
}

// LeaderboardEntry is a single row of the coin leaderboard
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
	Coins    int    `json:"coins"`
	Title    string `json:"title,omitempty"`
}
