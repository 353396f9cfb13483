package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// PingCommand returns the ping command definition and handler
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdPing,
		Description: "Check if the bot is alive",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: MsgPong,
			},
		}); err != nil {
			slog.Error(LogMsgRespondFailed, "error", err)
		}
	}

	return cmd, handler
}

// RegisterCommand returns the register command definition and handler
func RegisterCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdRegister,
		Description: "Create your angler profile",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		nickname := ""
		if u := getInteractionUser(i); u != nil {
			nickname = u.Username
		}
		handleEmbedResponse(s, i, TitleRegister, func(ctx context.Context, userID string) (string, int, error) {
			res, err := client.Register(ctx, userID, nickname)
			if err != nil {
				return "", 0, err
			}
			return res.Message, resultColor(res), nil
		})
	}

	return cmd, handler
}

// SignInCommand returns the daily sign-in command definition and handler
func SignInCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdSignIn,
		Description: "Claim your daily sign-in reward",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, TitleSignIn, func(ctx context.Context, userID string) (string, int, error) {
			res, err := client.SignIn(ctx, userID)
			if err != nil {
				return "", 0, err
			}
			color := resultColor(res.Result)
			if res.BonusCoins > 0 {
				color = ColorGold
			}
			return formatSignIn(res), color, nil
		})
	}

	return cmd, handler
}

// CurrencyCommand returns the wallet command definition and handler
func CurrencyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdCurrency,
		Description: "Show your coins and premium currency",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, TitleCurrency, func(ctx context.Context, userID string) (string, int, error) {
			res, err := client.GetCurrency(ctx, userID)
			if err != nil {
				return "", 0, err
			}
			color := ColorInfo
			if !res.Success {
				color = ColorFailure
			}
			return formatCurrency(res), color, nil
		})
	}

	return cmd, handler
}
