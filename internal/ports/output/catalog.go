package output

import (
	"dialogcat/internal/domain"
	"dialogcat/internal/domain/entities"
)

// Catalog exposes the read-only dialog text tables.
// Implementations resolve the locale with a fallback to their default locale.
type Catalog interface {
	// Lookup returns the raw record, slot untouched. Unknown keys yield an
	// error matching domain.ErrKeyNotFound.
	Lookup(locale string, kind domain.Kind, key domain.Key) (domain.Message, error)
	// Render is Lookup followed by slot substitution.
	Render(locale string, kind domain.Kind, key domain.Key, details ...string) (domain.Message, error)
	// Choices returns the localized response controls of a catalog.
	Choices(locale string, kind domain.Kind) []entities.Choice
}
