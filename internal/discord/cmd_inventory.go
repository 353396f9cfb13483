package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// TitlesCommand lists the caller's titles
func TitlesCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdTitles,
		Description: "List the titles you own",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, TitleTitles, func(ctx context.Context, userID string) (string, int, error) {
			res, err := client.GetTitles(ctx, userID)
			if err != nil {
				return "", 0, err
			}
			color := ColorInfo
			if !res.Success {
				color = ColorFailure
			}
			return formatTitles(res), color, nil
		})
	}

	return cmd, handler
}

// UseTitleCommand selects one of the caller's titles
func UseTitleCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minID := 1.0
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdUseTitle,
		Description: "Display one of your titles",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptTitle,
				Description: "Title ID, see /titles",
				Required:    true,
				MinValue:    &minID,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		titleID := 0
		if opt, ok := getOptions(i)[OptTitle]; ok {
			titleID = int(opt.IntValue())
		}
		handleEmbedResponse(s, i, TitleUseTitle, func(ctx context.Context, userID string) (string, int, error) {
			res, err := client.UseTitle(ctx, userID, titleID)
			if err != nil {
				return "", 0, err
			}
			return res.Message, resultColor(res), nil
		})
	}

	return cmd, handler
}

// AccessoryCommand shows the equipped accessory
func AccessoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdAccessory,
		Description: "Show your equipped accessory",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, TitleAccessory, func(ctx context.Context, userID string) (string, int, error) {
			res, err := client.GetAccessory(ctx, userID)
			if err != nil {
				return "", 0, err
			}
			color := ColorInfo
			if !res.Success {
				color = ColorFailure
			}
			return formatAccessory(res), color, nil
		})
	}

	return cmd, handler
}
