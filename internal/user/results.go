package user

import "github.com/osse101/FishingBot_Go/internal/domain"

// SignInResult is returned by DailySignIn
type SignInResult struct {
	domain.Result
	CoinsReward     int `json:"coins_reward"`
	BonusCoins      int `json:"bonus_coins"`
	ConsecutiveDays int `json:"consecutive_days"`
}

// AccessoryResult is returned by GetUserCurrentAccessory. Accessory is nil
// when nothing is equipped.
type AccessoryResult struct {
	domain.Result
	Accessory *domain.AccessoryView `json:"accessory"`
}

// TitlesResult is returned by GetUserTitles
type TitlesResult struct {
	domain.Result
	Titles []domain.TitleView `json:"titles"`
}

// CurrencyResult is returned by GetUserCurrency. Both balances are always
// present, zero on failure.
type CurrencyResult struct {
	domain.Result
	Coins           int `json:"coins"`
	PremiumCurrency int `json:"premium_currency"`
}

// TaxRecordsResult is returned by GetTaxRecord
type TaxRecordsResult struct {
	domain.Result
	Records []domain.TaxRecord `json:"records"`
}

// LeaderboardResult is returned by GetLeaderboard
type LeaderboardResult struct {
	domain.Result
	Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
}
