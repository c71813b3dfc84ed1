package domain

import "errors"

// Domain errors.
var (
	ErrUnsupportedLanguage = errors.New("langue non supportée")
	ErrNoLanguages         = errors.New("aucune langue supportée configurée")
	ErrDuplicateLanguage   = errors.New("langue supportée en double")
	ErrBaseNotSupported    = errors.New("la langue de référence doit faire partie des langues supportées")
	ErrMissingCatalog      = errors.New("catalogue de traductions requis")
	ErrMissingPreferences  = errors.New("stockage des préférences requis")
	ErrBaseNotResolvable   = errors.New("le catalogue ne résout pas la langue de référence")
)
