package domain

// Platform constants
const (
	PlatformDiscord = "discord"
	PlatformHTTP    = "http"
)

// Tax types recorded in the ledger
const (
	TaxTypeDaily    = "daily"
	TaxTypeTransfer = "transfer"
	TaxTypeAdmin    = "admin"
)

// Leaderboard bounds
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// Catalog validation bounds
const (
	MinRarity = 1
	MaxRarity = 10
)

// Coin award kinds, used as metric labels
const (
	CoinKindSignIn = "signin"
	CoinKindBonus  = "bonus"
)

// PlatformUserID namespaces a platform account id, e.g. "discord:1234"
func PlatformUserID(platform, id string) string {
	return platform + ":" + id
}
