package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"dialogcat/internal/domain/entities"
	pkgdiscord "dialogcat/pkg/discord"
)

// interactionLocale prefers the user's client locale over the guild's.
func interactionLocale(i *discordgo.Interaction) string {
	if i == nil {
		return ""
	}
	if i.Locale != "" {
		return string(i.Locale)
	}
	if i.GuildLocale != nil {
		return string(*i.GuildLocale)
	}
	return ""
}

func dialogResponse(d *entities.Dialog) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{pkgdiscord.BuildDialogEmbed(d)},
			Components: pkgdiscord.BuildDialogComponents(d),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	}
}

// dismissResponse keeps the dialog text and drops its buttons.
func dismissResponse(msg *discordgo.Message) *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{
		Components: []discordgo.MessageComponent{},
	}
	if msg != nil {
		data.Embeds = msg.Embeds
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: data,
	}
}

// Responder is the part of *discordgo.Session used to answer interactions.
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

var _ Responder = (*discordgo.Session)(nil)

// RespondDialog answers the interaction with an ephemeral dialog.
func RespondDialog(s Responder, i *discordgo.Interaction, d *entities.Dialog) {
	if err := s.InteractionRespond(i, dialogResponse(d)); err != nil {
		log.Printf("discord: respond dialog %s: %v", d.Key, err)
	}
}
