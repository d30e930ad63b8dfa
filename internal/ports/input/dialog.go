package input

import (
	"dialogcat/internal/domain"
	"dialogcat/internal/domain/entities"
)

type DialogUseCase interface {
	ShowError(locale string, key domain.Key, details ...string) (*entities.Dialog, error)
	Confirm(locale string, key domain.Key, details ...string) (*entities.Dialog, error)
	DialogFor(locale string, err error) *entities.Dialog
}
