package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"dialogcat/internal/domain"
	pkgdiscord "dialogcat/pkg/discord"
)

// ShowFailure answers the interaction with the error dialog describing err.
func (h *Handler) ShowFailure(s Responder, i *discordgo.InteractionCreate, err error) {
	d := h.dialogUseCase.DialogFor(interactionLocale(i.Interaction), err)
	RespondDialog(s, i.Interaction, d)
}

// AskConfirmation answers the interaction with a yes/no alert.
func (h *Handler) AskConfirmation(s Responder, i *discordgo.InteractionCreate, key domain.Key, details ...string) error {
	d, err := h.dialogUseCase.Confirm(interactionLocale(i.Interaction), key, details...)
	if err != nil {
		return err
	}
	RespondDialog(s, i.Interaction, d)
	return nil
}

// HandleChoice dismisses a dialog once one of its buttons is pressed.
// It reports false, without responding, for anything but a press on a
// button built by BuildDialogComponents.
func (h *Handler) HandleChoice(s Responder, i *discordgo.InteractionCreate) bool {
	if i == nil || i.Interaction == nil || i.Type != discordgo.InteractionMessageComponent {
		return false
	}
	key, choice, ok := pkgdiscord.ParseChoiceID(i.MessageComponentData().CustomID)
	if !ok {
		return false
	}
	if err := s.InteractionRespond(i.Interaction, dismissResponse(i.Message)); err != nil {
		log.Printf("discord: dismiss dialog %s: %v", key, err)
	}
	if h.onChoice != nil {
		h.onChoice(key, choice)
	}
	return true
}
