package domain

import "golang.org/x/text/language"

// PreferenceKeyLanguage is the key under which the active language is
// persisted in the preference store.
const PreferenceKeyLanguage = "app.language"

// Language is a supported language code, e.g. "en" or "ko".
type Language string

func (l Language) String() string { return string(l) }

// IsValid reports whether the code parses as a BCP 47 language tag.
// Membership in the supported set is checked by the store, not here.
func (l Language) IsValid() bool {
	if l == "" {
		return false
	}
	_, err := language.Parse(string(l))
	return err == nil
}

// Contains reports whether code is one of the supported languages.
func Contains(supported []Language, code Language) bool {
	for _, l := range supported {
		if l == code {
			return true
		}
	}
	return false
}
