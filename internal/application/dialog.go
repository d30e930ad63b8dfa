package application

import (
	"fmt"

	"dialogcat/internal/domain"
	"dialogcat/internal/domain/entities"
	"dialogcat/internal/ports/input"
	"dialogcat/internal/ports/output"
)

var _ input.DialogUseCase = (*DialogService)(nil)

// failureKeys maps the failure codes raised by the editor to the error
// dialog describing them.
var failureKeys = map[domain.Code]domain.Key{
	domain.CodeSceneParse:  domain.KeyCouldNotParseScene,
	domain.CodeSceneLoad:   domain.KeyCouldNotLoadScene,
	domain.CodePrefabParse: domain.KeyCouldNotParsePrefab,
	domain.CodePrefabLoad:  domain.KeyCouldNotLoadPrefab,
	domain.CodeProjectOpen: domain.KeyCouldNotOpenProject,
	domain.CodeNoProject:   domain.KeyCouldNotPerformActionWithoutProject,
	domain.CodeAssetImport: domain.KeyCouldNotImportAsset,
}

// DialogService renders catalog records into dialogs.
type DialogService struct {
	catalog output.Catalog
}

// NewDialogService creates a DialogService.
func NewDialogService(catalog output.Catalog) *DialogService {
	return &DialogService{catalog: catalog}
}

// ShowError builds an error notification dismissed with a single control.
func (s *DialogService) ShowError(locale string, key domain.Key, details ...string) (*entities.Dialog, error) {
	return s.build(locale, domain.KindError, key, details...)
}

// Confirm builds a yes/no confirmation.
func (s *DialogService) Confirm(locale string, key domain.Key, details ...string) (*entities.Dialog, error) {
	return s.build(locale, domain.KindAlert, key, details...)
}

// DialogFor picks the error dialog describing err. The wrapped cause, if
// any, fills the slot; errors without a known code get the generic dialog.
func (s *DialogService) DialogFor(locale string, err error) *entities.Dialog {
	key, ok := failureKeys[domain.CodeOf(err)]
	if !ok {
		key = domain.KeyGenericError
	}
	detail := ""
	if cause := domain.Cause(err); cause != nil {
		detail = cause.Error()
	}
	d, buildErr := s.build(locale, domain.KindError, key, detail)
	if buildErr != nil {
		// Every failure key is part of the closed error set.
		panic(buildErr)
	}
	return d
}

func (s *DialogService) build(locale string, kind domain.Kind, key domain.Key, details ...string) (*entities.Dialog, error) {
	msg, err := s.catalog.Render(locale, kind, key, details...)
	if err != nil {
		return nil, fmt.Errorf("build dialog: %w", err)
	}
	return &entities.Dialog{
		Kind:    kind,
		Key:     key,
		Title:   msg.Title,
		Body:    msg.Body,
		Choices: s.catalog.Choices(locale, kind),
	}, nil
}
