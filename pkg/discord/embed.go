package discord

import (
	"strings"

	"dialogcat/internal/domain"
	"dialogcat/internal/domain/entities"

	"github.com/bwmarrin/discordgo"
)

const (
	errorColor = 0xED4245
	alertColor = 0x5865F2

	customIDPrefix = "dialog"
)

// BuildDialogEmbed renders the dialog title and body as an embed.
func BuildDialogEmbed(d *entities.Dialog) *discordgo.MessageEmbed {
	color := errorColor
	if d.IsConfirmation() {
		color = alertColor
	}
	return &discordgo.MessageEmbed{
		Title:       d.Title,
		Description: d.Body,
		Color:       color,
	}
}

// BuildDialogComponents renders the dialog choices as a single row of
// buttons. The first choice of a confirmation is the primary action.
func BuildDialogComponents(d *entities.Dialog) []discordgo.MessageComponent {
	buttons := make([]discordgo.MessageComponent, 0, len(d.Choices))
	for idx, choice := range d.Choices {
		style := discordgo.SecondaryButton
		if idx == 0 {
			style = discordgo.PrimaryButton
		}
		buttons = append(buttons, discordgo.Button{
			Label:    choice.Label,
			Style:    style,
			CustomID: ChoiceCustomID(d.Key, choice.ID),
		})
	}
	if len(buttons) == 0 {
		return nil
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

// ChoiceCustomID encodes a dialog choice as "dialog:<key>:<choice>".
func ChoiceCustomID(key domain.Key, choice domain.ChoiceID) string {
	return customIDPrefix + ":" + string(key) + ":" + string(choice)
}

// ParseChoiceID reverses ChoiceCustomID. Only keys of a catalog paired with
// one of that catalog's choices are accepted.
func ParseChoiceID(customID string) (key domain.Key, choice domain.ChoiceID, ok bool) {
	parts := strings.Split(customID, ":")
	if len(parts) != 3 || parts[0] != customIDPrefix {
		return "", "", false
	}
	key, choice = domain.Key(parts[1]), domain.ChoiceID(parts[2])
	for _, kind := range domain.Kinds {
		if !domain.Has(kind, key) {
			continue
		}
		for _, id := range domain.ChoiceIDs(kind) {
			if id == choice {
				return key, choice, true
			}
		}
	}
	return "", "", false
}
