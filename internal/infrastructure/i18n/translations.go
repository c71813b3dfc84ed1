package i18n

import (
	"embed"
	"errors"
	"fmt"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"locstore/internal/domain"
	"locstore/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Catalog implements the output.Catalog port.
var _ output.Catalog = (*Catalog)(nil)

// Catalog is a thin wrapper around go-i18n's Bundle/Localizer. The bundle's
// default language is the base language, so a single localizer already
// resolves the locale -> base part of the fallback chain.
type Catalog struct {
	bundle  *i18n.Bundle
	locales []domain.Language
}

// NewCatalog builds a Catalog for the given base locale (e.g. "en") and the
// full set of locales to load.
//
// It loads translations from the embedded active.<locale>.toml files; a
// locale whose file is missing stays resolvable through the base language.
func NewCatalog(base domain.Language, locales []domain.Language) *Catalog {
	tag, err := language.Parse(base.String())
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	loaded := make([]domain.Language, 0, len(locales))
	for _, locale := range locales {
		file := fmt.Sprintf("active.%s.toml", locale)
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("i18n: failed to load %s: %v", file, err)
			continue
		}
		loaded = append(loaded, locale)
	}

	return &Catalog{
		bundle:  bundle,
		locales: loaded,
	}
}

// Languages returns the locales whose catalog files actually loaded. A
// configured locale whose file is missing is excluded, so resolvability
// checks against the catalog see the real table set.
func (c *Catalog) Languages() []domain.Language {
	out := make([]domain.Language, len(c.locales))
	copy(out, c.locales)
	return out
}

// Lookup resolves key for the given locale, consulting the base language when
// the locale's table lacks the key. found is false only when the key is
// absent from every table; rendering failures on a present key also report
// not found so callers can degrade.
func (c *Catalog) Lookup(locale domain.Language, key string, data map[string]any) (string, bool) {
	if key == "" {
		return "", false
	}

	localizer := i18n.NewLocalizer(c.bundle, locale.String())
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) {
			// go-i18n renders the base-language translation alongside the
			// error when the key is only missing from the requested locale.
			if msg != "" {
				return msg, true
			}
			return "", false
		}
		log.Printf("i18n: localize failed (key=%s, locale=%s): %v", key, locale, err)
		return "", false
	}
	return msg, true
}
