package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"dialogcat/internal/domain"
	"dialogcat/internal/domain/entities"
	"dialogcat/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

const filePattern = "active.*.toml"

// FallbackLocale is the locale the embedded tables are authored in.
const FallbackLocale = "en"

// Ensure Catalog implements the output.Catalog port.
var _ output.Catalog = (*Catalog)(nil)

// Catalog is the dialog text table, backed by a go-i18n Bundle.
// It is read-only once built and safe for concurrent use.
type Catalog struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewCatalog builds a Catalog from the embedded active.*.toml files using
// the given default locale (e.g. "en").
func NewCatalog(defaultLocale string) (*Catalog, error) {
	return NewCatalogFS(localeFS, defaultLocale)
}

// NewCatalogFS builds a Catalog from the active.*.toml files at the root of
// fsys. The default locale file is mandatory; other locales that fail to
// load are logged and skipped.
func NewCatalogFS(fsys fs.FS, defaultLocale string) (*Catalog, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		log.Printf("i18n: invalid default locale %q, using en: %v", defaultLocale, err)
		tag = language.English
	}

	files, err := fs.Glob(fsys, filePattern)
	if err != nil {
		return nil, fmt.Errorf("i18n: list message files: %w", err)
	}
	defaultFile, tag, ok := defaultMessageFile(files, tag)
	if !ok {
		return nil, fmt.Errorf("i18n: missing message file %s for default locale", defaultFile)
	}

	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(fsys, file); err != nil {
			if file == defaultFile {
				return nil, fmt.Errorf("i18n: load %s: %w", file, err)
			}
			log.Printf("i18n: failed to load %s: %v", file, err)
		}
	}

	c := &Catalog{
		bundle:          bundle,
		defaultLanguage: tag,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// defaultMessageFile picks the file holding the default locale: an exact
// match first (active.en-US.toml), then the base language (active.en.toml).
// The returned tag is the one the file is loaded under.
func defaultMessageFile(files []string, tag language.Tag) (string, language.Tag, bool) {
	exact := "active." + tag.String() + ".toml"
	base, _ := tag.Base()
	baseTag := language.Make(base.String())
	baseFile := "active." + baseTag.String() + ".toml"
	for _, candidate := range []struct {
		file string
		tag  language.Tag
	}{{exact, tag}, {baseFile, baseTag}} {
		for _, file := range files {
			if file == candidate.file {
				return candidate.file, candidate.tag, true
			}
		}
	}
	return exact, tag, false
}

// validate checks the closed key set against every loaded locale.
func (c *Catalog) validate() error {
	defaultLocale := c.defaultLanguage.String()
	for _, kind := range domain.Kinds {
		for _, key := range domain.Keys(kind) {
			want, err := c.Lookup(defaultLocale, kind, key)
			if err != nil {
				return fmt.Errorf("i18n: %w", err)
			}
			if strings.TrimSpace(want.Title) == "" || strings.TrimSpace(want.Body) == "" {
				return fmt.Errorf("i18n: %w: %s.%s has an empty title or body", domain.ErrInvalidEntry, kind, key)
			}
			for _, tag := range c.bundle.LanguageTags() {
				got, err := c.Lookup(tag.String(), kind, key)
				if err != nil {
					return fmt.Errorf("i18n: %w", err)
				}
				if n := strings.Count(got.Body, domain.Slot); n > 1 {
					return fmt.Errorf("i18n: %w: %s.%s (%s) has %d slots", domain.ErrInvalidEntry, kind, key, tag, n)
				}
				if got.HasSlot() != want.HasSlot() {
					return fmt.Errorf("i18n: %w: %s.%s (%s) slot does not match locale %s", domain.ErrInvalidEntry, kind, key, tag, defaultLocale)
				}
			}
		}
	}
	return nil
}

// Lookup returns the record for key in the given catalog. Each field falls
// back to the default locale when locale has no translation for it.
func (c *Catalog) Lookup(locale string, kind domain.Kind, key domain.Key) (domain.Message, error) {
	if kind != domain.KindError && kind != domain.KindAlert {
		return domain.Message{}, fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}
	notFound := &domain.KeyNotFoundError{Kind: kind, Key: key, Locale: locale}
	if !domain.Has(kind, key) {
		return domain.Message{}, notFound
	}

	localizer := c.localizer(locale)
	prefix := string(kind) + "." + string(key)
	title, err := localize(localizer, prefix+".title")
	if err != nil {
		return domain.Message{}, c.lookupError(notFound, err)
	}
	body, err := localize(localizer, prefix+".body")
	if err != nil {
		return domain.Message{}, c.lookupError(notFound, err)
	}
	return domain.Message{Title: title, Body: body}, nil
}

// MustLookup is Lookup for keys known to exist. It panics otherwise.
func (c *Catalog) MustLookup(locale string, kind domain.Kind, key domain.Key) domain.Message {
	msg, err := c.Lookup(locale, kind, key)
	if err != nil {
		panic(err)
	}
	return msg
}

// Render looks the record up and fills its slot with details.
func (c *Catalog) Render(locale string, kind domain.Kind, key domain.Key, details ...string) (domain.Message, error) {
	msg, err := c.Lookup(locale, kind, key)
	if err != nil {
		return domain.Message{}, err
	}
	return msg.Format(details...), nil
}

// Error renders a record of the error catalog.
func (c *Catalog) Error(locale string, key domain.Key, details ...string) (domain.Message, error) {
	return c.Render(locale, domain.KindError, key, details...)
}

// Alert renders a record of the alert catalog.
func (c *Catalog) Alert(locale string, key domain.Key, details ...string) (domain.Message, error) {
	return c.Render(locale, domain.KindAlert, key, details...)
}

// Choices returns the localized response controls of a catalog. Labels fall
// back to the default locale, then to their id.
func (c *Catalog) Choices(locale string, kind domain.Kind) []entities.Choice {
	localizer := c.localizer(locale)
	ids := domain.ChoiceIDs(kind)
	choices := make([]entities.Choice, 0, len(ids))
	for _, id := range ids {
		label, err := localize(localizer, "choices."+string(id))
		if err != nil {
			label = string(id)
		}
		choices = append(choices, entities.Choice{ID: id, Label: label})
	}
	return choices
}

// Keys returns the ordered key set of a catalog.
func (c *Catalog) Keys(kind domain.Kind) []domain.Key {
	return domain.Keys(kind)
}

// Locales lists the loaded locales, default first.
func (c *Catalog) Locales() []string {
	tags := c.bundle.LanguageTags()
	locales := make([]string, 0, len(tags))
	locales = append(locales, c.defaultLanguage.String())
	for _, tag := range tags {
		if tag == c.defaultLanguage {
			continue
		}
		locales = append(locales, tag.String())
	}
	return locales
}

// DefaultLocale returns the locale every lookup falls back to.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLanguage.String()
}

func (c *Catalog) localizer(locale string) *i18n.Localizer {
	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, c.defaultLanguage.String())
	return i18n.NewLocalizer(c.bundle, languages...)
}

func (c *Catalog) lookupError(notFound *domain.KeyNotFoundError, err error) error {
	var missing *i18n.MessageNotFoundErr
	if errors.As(err, &missing) {
		return notFound
	}
	return fmt.Errorf("i18n: render %s.%s: %w", notFound.Kind, notFound.Key, err)
}

// localize resolves id, accepting the default-language text go-i18n hands
// back alongside a MessageNotFoundErr when the requested locale lacks it.
func localize(localizer *i18n.Localizer, id string) (string, error) {
	msg, tag, err := localizer.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: id})
	var missing *i18n.MessageNotFoundErr
	if errors.As(err, &missing) && tag != language.Und && msg != "" {
		return msg, nil
	}
	return msg, err
}
