package output

import "locstore/internal/domain"

// Catalog exposes a minimal i18n contract over a static translation table.
// Implementations provide message lookup for a given locale, with explicit
// presence reporting so callers can run their own fallback chain.
type Catalog interface {
	// Lookup resolves key for the given locale. data is an optional map used
	// for template placeholders (may be nil). found is false only when the
	// key cannot be resolved for the locale at all; an empty translation is a
	// valid result and reported as found.
	Lookup(locale domain.Language, key string, data map[string]any) (msg string, found bool)

	// Languages returns the locales the catalog can resolve.
	Languages() []domain.Language
}
