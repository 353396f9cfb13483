package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/user"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "999", formatNumber(999))
	assert.Equal(t, "12,345", formatNumber(12345))
	assert.Equal(t, "-1,000", formatNumber(-1000))
}

func TestFormatSignIn(t *testing.T) {
	tests := []struct {
		name string
		res  user.SignInResult
		want string
	}{
		{
			name: "failure shows message only",
			res:  user.SignInResult{Result: domain.Fail(domain.FailureAlreadyCheckedInToday, "Already signed in")},
			want: "Already signed in",
		},
		{
			name: "plain reward",
			res:  user.SignInResult{Result: domain.OK("Signed in"), CoinsReward: 1500, ConsecutiveDays: 2},
			want: "Signed in\n\n**Reward:** 1,500 coins\n**Streak:** 2 day(s)",
		},
		{
			name: "with bonus",
			res:  user.SignInResult{Result: domain.OK("Signed in"), CoinsReward: 100, BonusCoins: 50, ConsecutiveDays: 7},
			want: "Signed in\n\n**Reward:** 100 coins\n**Streak:** 7 day(s)\n**Streak bonus:** 50 coins",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatSignIn(tt.res))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	ok := user.CurrencyResult{Result: domain.OK(""), Coins: 2500, PremiumCurrency: 3}
	assert.Equal(t, "**Coins:** 2,500\n**Premium:** 3", formatCurrency(ok))

	fail := user.CurrencyResult{Result: domain.Fail(domain.FailureUserNotFound, "Who?")}
	assert.Equal(t, "Who?", formatCurrency(fail))
}

func TestFormatTitles(t *testing.T) {
	assert.Equal(t, MsgNoTitles, formatTitles(user.TitlesResult{Result: domain.OK("")}))

	res := user.TitlesResult{
		Result: domain.OK(""),
		Titles: []domain.TitleView{
			{TitleID: 1, Name: "Novice"},
			{TitleID: 4, Name: "Angler", IsCurrent: true},
		},
	}
	assert.Equal(t, "`#1` **Novice**\n`#4` **Angler** *(current)*", formatTitles(res))
}

func TestFormatAccessory(t *testing.T) {
	assert.Equal(t, MsgNoAccessory, formatAccessory(user.AccessoryResult{Result: domain.OK("")}))

	res := user.AccessoryResult{
		Result:    domain.OK(""),
		Accessory: &domain.AccessoryView{ID: 2, Name: "Lucky Hat"},
	}
	assert.Equal(t, "**Lucky Hat**", formatAccessory(res))

	res.Accessory.Description = "Smells of trout"
	assert.Equal(t, "**Lucky Hat**\nSmells of trout", formatAccessory(res))
}

func TestFormatTaxes(t *testing.T) {
	assert.Equal(t, MsgNoTaxRecords, formatTaxes(user.TaxRecordsResult{Result: domain.OK("")}))

	res := user.TaxRecordsResult{
		Result: domain.OK(""),
		Records: []domain.TaxRecord{
			{Amount: 1200, TaxType: "wealth", Timestamp: time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)},
		},
	}
	assert.Equal(t, "2026-03-04 · wealth · 1,200 coins", formatTaxes(res))
}

func TestFormatLeaderboard(t *testing.T) {
	assert.Equal(t, MsgEmptyLeaderboard, formatLeaderboard(user.LeaderboardResult{Result: domain.OK("")}))

	res := user.LeaderboardResult{
		Result: domain.OK(""),
		Leaderboard: []domain.LeaderboardEntry{
			{Rank: 1, Nickname: "Ann", Coins: 10000, Title: "Whale"},
			{Rank: 4, Nickname: "Bob", Coins: 10},
		},
	}
	assert.Equal(t, "🥇 **Ann [Whale]** · 10,000 coins\n`4.` **Bob** · 10 coins", formatLeaderboard(res))
}

func TestResultColor(t *testing.T) {
	assert.Equal(t, ColorSuccess, resultColor(domain.OK("")))
	assert.Equal(t, ColorFailure, resultColor(domain.Fail(domain.FailureNotRegistered, "")))
}
