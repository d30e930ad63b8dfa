package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"dialogcat/internal/application"
	"dialogcat/internal/config"
	"dialogcat/internal/domain"
	"dialogcat/internal/domain/entities"
	"dialogcat/internal/infrastructure/i18n"
)

const usage = `usage: dialogcat [-locale xx] [-alert] <key> [detail]
       dialogcat [-alert] -list
       dialogcat -locales`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	cfg, err := config.Load()
	if err != nil {
		logger.Printf("❌ %v", err)
		return 1
	}

	fs := flag.NewFlagSet("dialogcat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprintln(stderr, usage) }
	locale := fs.String("locale", cfg.Locale, "locale used to render the dialog")
	alert := fs.Bool("alert", false, "use the alert catalog instead of the error catalog")
	list := fs.Bool("list", false, "list the keys of the catalog")
	locales := fs.Bool("locales", false, "list the loaded locales")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	catalog, err := newCatalog(cfg)
	if err != nil {
		logger.Printf("❌ %v", err)
		return 1
	}

	kind := domain.KindError
	if *alert {
		kind = domain.KindAlert
	}

	switch {
	case *locales:
		for _, l := range catalog.Locales() {
			fmt.Fprintln(stdout, l)
		}
		return 0
	case *list:
		for _, key := range catalog.Keys(kind) {
			fmt.Fprintln(stdout, key)
		}
		return 0
	}

	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return 2
	}
	key := domain.Key(fs.Arg(0))
	details := fs.Args()[1:]

	service := application.NewDialogService(catalog)
	var d *entities.Dialog
	if kind == domain.KindAlert {
		d, err = service.Confirm(*locale, key, details...)
	} else {
		d, err = service.ShowError(*locale, key, details...)
	}
	if err != nil {
		logger.Printf("❌ %v", err)
		if errors.Is(err, domain.ErrKeyNotFound) {
			return 2
		}
		return 1
	}

	printDialog(stdout, d)
	return 0
}

// newCatalog always falls back to the authoring locale; cfg.Locale only
// selects the display locale.
func newCatalog(cfg *config.Config) (*i18n.Catalog, error) {
	if cfg.LocaleDir != "" {
		return i18n.NewCatalogFS(os.DirFS(cfg.LocaleDir), i18n.FallbackLocale)
	}
	return i18n.NewCatalog(i18n.FallbackLocale)
}

func printDialog(w io.Writer, d *entities.Dialog) {
	labels := make([]string, 0, len(d.Choices))
	for _, c := range d.Choices {
		labels = append(labels, "["+c.Label+"]")
	}
	fmt.Fprintf(w, "%s\n\n%s\n\n%s\n", d.Title, d.Body, strings.Join(labels, " "))
}
