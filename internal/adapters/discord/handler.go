package discord

import (
	"dialogcat/internal/domain"
	"dialogcat/internal/ports/input"
)

// ChoiceFunc receives the decision taken on a dialog.
type ChoiceFunc func(key domain.Key, choice domain.ChoiceID)

// Handler presents dialogs as Discord interaction responses.
type Handler struct {
	dialogUseCase input.DialogUseCase
	onChoice      ChoiceFunc
}

// NewHandler creates a Handler. onChoice may be nil.
func NewHandler(dialogUseCase input.DialogUseCase, onChoice ChoiceFunc) *Handler {
	return &Handler{
		dialogUseCase: dialogUseCase,
		onChoice:      onChoice,
	}
}
