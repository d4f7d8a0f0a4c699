package domain

import "fmt"

// Language identifies one of the languages the trainer supports.
// The set is closed: persistence, the API layer and the answer validation
// engine all branch on it exhaustively.
type Language string

// Supported languages.
const (
	LanguageRU Language = "RU"
	LanguageDE Language = "DE"
	LanguageEN Language = "EN"
	LanguageHY Language = "HY"
)

// languageNames maps each supported language to its self-name, used in
// user-facing listings.
var languageNames = map[Language]string{
	LanguageRU: "Русский",
	LanguageDE: "Deutsch",
	LanguageEN: "English",
	LanguageHY: "Հայերեն",
}

// ParseLanguage converts a string code into a Language.
// Returns an error for codes outside the supported set.
func ParseLanguage(code string) (Language, error) {
	lang := Language(code)
	if !lang.Valid() {
		return "", fmt.Errorf("%w: unsupported language code %q", ErrValidation, code)
	}
	return lang, nil
}

// Valid reports whether the language is one of the supported codes.
func (l Language) Valid() bool {
	switch l {
	case LanguageRU, LanguageDE, LanguageEN, LanguageHY:
		return true
	default:
		return false
	}
}

// DisplayName returns the language's self-name, or the raw code if the
// language is unknown.
func (l Language) DisplayName() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return string(l)
}
