package entities

import "dialogcat/internal/domain"

// Choice is a localized response control.
type Choice struct {
	ID    domain.ChoiceID
	Label string
}

// Dialog is a rendered message plus the controls used to dismiss it.
type Dialog struct {
	Kind    domain.Kind
	Key     domain.Key
	Title   string
	Body    string
	Choices []Choice
}

// IsConfirmation reports whether the dialog asks for a decision.
func (d *Dialog) IsConfirmation() bool {
	return d.Kind == domain.KindAlert
}
