package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// TaxesCommand shows the caller's tax ledger
func TaxesCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdTaxes,
		Description: "Show the taxes you have paid",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, TitleTaxes, func(ctx context.Context, userID string) (string, int, error) {
			res, err := client.GetTaxRecords(ctx, userID)
			if err != nil {
				return "", 0, err
			}
			color := ColorInfo
			if !res.Success {
				color = ColorFailure
			}
			return formatTaxes(res), color, nil
		})
	}

	return cmd, handler
}

// LeaderboardCommand shows the richest anglers
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minLimit := 1.0
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdLeaderboard,
		Description: "Show the richest anglers",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptLimit,
				Description: "How many entries to show",
				Required:    false,
				MinValue:    &minLimit,
				MaxValue:    25,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		limit := 0
		if opt, ok := getOptions(i)[OptLimit]; ok {
			limit = int(opt.IntValue())
		}
		handleEmbedResponse(s, i, TitleLeaderboard, func(ctx context.Context, _ string) (string, int, error) {
			res, err := client.GetLeaderboard(ctx, limit)
			if err != nil {
				return "", 0, err
			}
			return formatLeaderboard(res), ColorGold, nil
		})
	}

	return cmd, handler
}
