package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dialogcat/internal/domain"
	"dialogcat/internal/domain/entities"
)

func TestInteractionLocale(t *testing.T) {
	guild := discordgo.French

	assert.Equal(t, "", interactionLocale(nil))
	assert.Equal(t, "", interactionLocale(&discordgo.Interaction{}))
	assert.Equal(t, "fr", interactionLocale(&discordgo.Interaction{GuildLocale: &guild}))
	assert.Equal(t, "en-US", interactionLocale(&discordgo.Interaction{Locale: discordgo.EnglishUS, GuildLocale: &guild}))
}

func TestDialogResponse(t *testing.T) {
	d := &entities.Dialog{
		Kind:  domain.KindAlert,
		Key:   domain.KeyConfirmImportAsset,
		Title: "External file",
		Body:  "Do you want to import the file?",
		Choices: []entities.Choice{
			{ID: domain.ChoiceYes, Label: "Yes"},
			{ID: domain.ChoiceNo, Label: "No"},
		},
	}

	resp := dialogResponse(d)
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	require.NotNil(t, resp.Data)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	require.Len(t, resp.Data.Embeds, 1)
	assert.Equal(t, "External file", resp.Data.Embeds[0].Title)
	assert.Len(t, resp.Data.Components, 1)
}

func TestDismissResponse(t *testing.T) {
	embed := &discordgo.MessageEmbed{Title: "External file"}
	resp := dismissResponse(&discordgo.Message{Embeds: []*discordgo.MessageEmbed{embed}})
	assert.Equal(t, discordgo.InteractionResponseUpdateMessage, resp.Type)
	assert.Empty(t, resp.Data.Components)
	assert.Equal(t, []*discordgo.MessageEmbed{embed}, resp.Data.Embeds)

	assert.Nil(t, dismissResponse(nil).Data.Embeds)
}
