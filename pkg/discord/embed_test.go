package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dialogcat/internal/domain"
	"dialogcat/internal/domain/entities"
)

func TestBuildDialogEmbed(t *testing.T) {
	errDialog := &entities.Dialog{Kind: domain.KindError, Key: domain.KeyGenericError, Title: "Error", Body: "An unexpected error occurred."}
	embed := BuildDialogEmbed(errDialog)
	assert.Equal(t, "Error", embed.Title)
	assert.Equal(t, "An unexpected error occurred.", embed.Description)
	assert.Equal(t, errorColor, embed.Color)

	alert := &entities.Dialog{Kind: domain.KindAlert, Key: domain.KeyConfirmImportAsset, Title: "External file", Body: "Import?"}
	assert.Equal(t, alertColor, BuildDialogEmbed(alert).Color)
}

func TestBuildDialogComponents(t *testing.T) {
	tests := []struct {
		name    string
		dialog  *entities.Dialog
		buttons []string
	}{
		{
			name: "error has one button",
			dialog: &entities.Dialog{
				Kind:    domain.KindError,
				Key:     domain.KeyCouldNotOpenProject,
				Choices: []entities.Choice{{ID: domain.ChoiceOK, Label: "OK"}},
			},
			buttons: []string{"dialog:couldNotOpenProject:ok"},
		},
		{
			name: "alert has two buttons",
			dialog: &entities.Dialog{
				Kind: domain.KindAlert,
				Key:  domain.KeyConfirmImportAsset,
				Choices: []entities.Choice{
					{ID: domain.ChoiceYes, Label: "Yes"},
					{ID: domain.ChoiceNo, Label: "No"},
				},
			},
			buttons: []string{"dialog:confirmImportAsset:yes", "dialog:confirmImportAsset:no"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := BuildDialogComponents(tt.dialog)
			require.Len(t, components, 1)
			row, ok := components[0].(discordgo.ActionsRow)
			require.True(t, ok)
			require.Len(t, row.Components, len(tt.buttons))
			for idx, c := range row.Components {
				button, ok := c.(discordgo.Button)
				require.True(t, ok)
				assert.Equal(t, tt.buttons[idx], button.CustomID)
				assert.Equal(t, tt.dialog.Choices[idx].Label, button.Label)
			}
			assert.Equal(t, discordgo.PrimaryButton, row.Components[0].(discordgo.Button).Style)
		})
	}
}

func TestBuildDialogComponentsNoChoices(t *testing.T) {
	assert.Nil(t, BuildDialogComponents(&entities.Dialog{Kind: domain.KindError}))
}

func TestParseChoiceID(t *testing.T) {
	key, choice, ok := ParseChoiceID(ChoiceCustomID(domain.KeyConfirmImportAsset, domain.ChoiceNo))
	require.True(t, ok)
	assert.Equal(t, domain.KeyConfirmImportAsset, key)
	assert.Equal(t, domain.ChoiceNo, choice)

	key, choice, ok = ParseChoiceID("dialog:couldNotImportAsset:ok")
	require.True(t, ok)
	assert.Equal(t, domain.KeyCouldNotImportAsset, key)
	assert.Equal(t, domain.ChoiceOK, choice)

	for _, bad := range []string{
		"", "dialog", "dialog::yes", "event:confirmImportAsset:yes", "dialog:a:b:c", "dialog:a:",
		"dialog:notAKey:maybe", "dialog:notAKey:yes", "dialog:confirmImportAsset:ok", "dialog:genericError:yes",
	} {
		_, _, ok := ParseChoiceID(bad)
		assert.False(t, ok, bad)
	}
}
