package input

import (
	"context"

	"locstore/internal/domain"
)

// Localizer is the consumption interface exposed to UI code: the current
// active language, a single mutation entry point, and a total lookup.
type Localizer interface {
	Language() domain.Language
	SetLanguage(ctx context.Context, code domain.Language) domain.Language
	Translate(key string, fallback ...string) string
}
