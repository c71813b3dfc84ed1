package application

import (
	"context"
	"fmt"
	"log"
	"sync"

	"locstore/internal/domain"
	"locstore/internal/ports/input"
	"locstore/internal/ports/output"
)

// Ensure LocalizationService implements the input.Localizer port.
var _ input.Localizer = (*LocalizationService)(nil)

// LocalizationService owns the active language and resolves translation keys
// through a four-tier fallback chain: active language, base language,
// caller-supplied fallback, then the key itself. Lookup is total: it degrades
// through the chain instead of failing.
type LocalizationService struct {
	catalog   output.Catalog
	prefs     output.PreferenceStore
	supported []domain.Language
	base      domain.Language

	mu     sync.RWMutex
	active domain.Language
}

// New builds a LocalizationService. It fails fast on wiring mistakes:
// missing collaborators, an empty or duplicated language set, a base language
// outside the set, or a catalog that cannot resolve the base language.
// The active language starts at base until Initialize is called.
func New(
	catalog output.Catalog,
	prefs output.PreferenceStore,
	supported []domain.Language,
	base domain.Language,
) (*LocalizationService, error) {
	if catalog == nil {
		return nil, domain.ErrMissingCatalog
	}
	if prefs == nil {
		return nil, domain.ErrMissingPreferences
	}
	if len(supported) == 0 {
		return nil, domain.ErrNoLanguages
	}
	seen := make(map[domain.Language]struct{}, len(supported))
	for _, l := range supported {
		if !l.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, l)
		}
		if _, ok := seen[l]; ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateLanguage, l)
		}
		seen[l] = struct{}{}
	}
	if !domain.Contains(supported, base) {
		return nil, fmt.Errorf("%w: %q", domain.ErrBaseNotSupported, base)
	}
	if !domain.Contains(catalog.Languages(), base) {
		return nil, fmt.Errorf("%w: %q", domain.ErrBaseNotResolvable, base)
	}

	return &LocalizationService{
		catalog:   catalog,
		prefs:     prefs,
		supported: supported,
		base:      base,
		active:    base,
	}, nil
}

// Initialize loads the persisted language preference. Absent, invalid or
// unreadable values coerce to the base language; the call never fails.
func (s *LocalizationService) Initialize(ctx context.Context) domain.Language {
	code := s.base
	stored, err := s.prefs.Get(ctx, domain.PreferenceKeyLanguage, s.base.String())
	if err != nil {
		log.Printf("localization: lecture de la préférence impossible, retour à %q: %v", s.base, err)
	} else if domain.Contains(s.supported, domain.Language(stored)) {
		code = domain.Language(stored)
	}

	s.mu.Lock()
	s.active = code
	s.mu.Unlock()
	return code
}

// Language returns the current active language.
func (s *LocalizationService) Language() domain.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SetLanguage switches the active language and persists the choice. An
// unsupported code is ignored: the previous language is retained and
// returned, and observability is left to the caller. The in-memory switch
// stands even when the persistence write fails; the failure is only logged.
func (s *LocalizationService) SetLanguage(ctx context.Context, code domain.Language) domain.Language {
	if !domain.Contains(s.supported, code) {
		return s.Language()
	}

	s.mu.Lock()
	s.active = code
	s.mu.Unlock()

	if err := s.prefs.Set(ctx, domain.PreferenceKeyLanguage, code.String()); err != nil {
		log.Printf("localization: persistance de la langue %q impossible: %v", code, err)
	}
	return code
}

// Translate resolves key for the active language. Resolution order, first
// match wins: active language, base language, the optional fallback argument,
// then the key itself. A key present with an empty translation is returned
// as-is; the chain only advances on a missing key.
func (s *LocalizationService) Translate(key string, fallback ...string) string {
	return s.TranslateWithData(key, nil, fallback...)
}

// TranslateWithData is Translate with template placeholder data.
func (s *LocalizationService) TranslateWithData(key string, data map[string]any, fallback ...string) string {
	active := s.Language()

	if msg, found := s.catalog.Lookup(active, key, data); found {
		return msg
	}
	if active != s.base {
		if msg, found := s.catalog.Lookup(s.base, key, data); found {
			return msg
		}
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return key
}
