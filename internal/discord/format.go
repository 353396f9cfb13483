package discord

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/user"
)

var medals = map[int]string{1: "🥇", 2: "🥈", 3: "🥉"}

// formatNumber groups digits, e.g. 12345 -> "12,345"
func formatNumber(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// resultColor picks green or red for a result embed
func resultColor(res domain.Result) int {
	if res.Success {
		return ColorSuccess
	}
	return ColorFailure
}

func formatSignIn(res user.SignInResult) string {
	if !res.Success {
		return res.Message
	}
	text := fmt.Sprintf(FmtSignIn, res.Message, formatNumber(res.CoinsReward), res.ConsecutiveDays)
	if res.BonusCoins > 0 {
		text += fmt.Sprintf(FmtSignInBonus, formatNumber(res.BonusCoins))
	}
	return text
}

func formatCurrency(res user.CurrencyResult) string {
	if !res.Success {
		return res.Message
	}
	return fmt.Sprintf(FmtCurrency, formatNumber(res.Coins), formatNumber(res.PremiumCurrency))
}

func formatTitles(res user.TitlesResult) string {
	if !res.Success {
		return res.Message
	}
	if len(res.Titles) == 0 {
		return MsgNoTitles
	}
	lines := make([]string, 0, len(res.Titles))
	for _, t := range res.Titles {
		marker := ""
		if t.IsCurrent {
			marker = MsgCurrentTitle
		}
		lines = append(lines, fmt.Sprintf(FmtTitleLine, t.TitleID, t.Name, marker))
	}
	return strings.Join(lines, "\n")
}

func formatAccessory(res user.AccessoryResult) string {
	if !res.Success {
		return res.Message
	}
	if res.Accessory == nil {
		return MsgNoAccessory
	}
	return strings.TrimSpace(fmt.Sprintf(FmtAccessory, res.Accessory.Name, res.Accessory.Description))
}

func formatTaxes(res user.TaxRecordsResult) string {
	if !res.Success {
		return res.Message
	}
	if len(res.Records) == 0 {
		return MsgNoTaxRecords
	}
	lines := make([]string, 0, len(res.Records))
	for _, rec := range res.Records {
		lines = append(lines, fmt.Sprintf(FmtTaxLine,
			rec.Timestamp.UTC().Format(TaxDateLayout), rec.TaxType, formatNumber(rec.Amount)))
	}
	return strings.Join(lines, "\n")
}

func formatLeaderboard(res user.LeaderboardResult) string {
	if !res.Success {
		return res.Message
	}
	if len(res.Leaderboard) == 0 {
		return MsgEmptyLeaderboard
	}
	lines := make([]string, 0, len(res.Leaderboard))
	for _, e := range res.Leaderboard {
		rank, ok := medals[e.Rank]
		if !ok {
			rank = fmt.Sprintf(FmtLeaderboardRank, e.Rank)
		}
		name := e.Nickname
		if e.Title != "" {
			name += fmt.Sprintf(FmtLeaderboardTag, e.Title)
		}
		lines = append(lines, fmt.Sprintf(FmtLeaderboardLine, rank, name, formatNumber(e.Coins)))
	}
	return strings.Join(lines, "\n")
}
