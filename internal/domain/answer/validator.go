// Package answer implements the answer validation engine: it decides whether
// a submitted answer matches an expected value, accounting for synonyms,
// language-specific orthography and multiple acceptable phrasings. Validation
// never fails with an error; malformed or empty input resolves to false.
package answer

import (
	"regexp"
	"strings"

	"github.com/lpetrosyan/vocab-api/internal/domain"
	"github.com/lpetrosyan/vocab-api/internal/domain/textnorm"
)

var (
	// Alternative phrasings inside an expected value are separated by
	// punctuation or by the connective words или/or/oder. Note that '.' and
	// '/' split unconditionally, so an expected value containing an
	// abbreviation or a slash as content is split too; that behavior is
	// intentional and pinned by tests.
	altSeparatorsRe = regexp.MustCompile(`(?i)(?:\s+или\s+|\s+or\s+|\s+oder\s+|[;,./|])+`)

	// Synonym entries may carry a translation gloss in a trailing
	// parenthetical ("Heim (дом)"); it is never part of the matched text.
	trailingParensRe = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
)

// Evaluate reports whether the submitted answer matches the expected value in
// the given language, considering synonyms and alternative phrasings.
func Evaluate(submitted, expected string, synonyms []string, lang domain.Language) bool {
	if strings.TrimSpace(submitted) == "" {
		return false
	}

	expectedValues := expandExpectedValues(expected)
	for _, synonym := range synonyms {
		if synonym == "" {
			continue
		}
		if normalized := textnorm.Normalize(synonymBase(synonym)); normalized != "" {
			expectedValues[normalized] = struct{}{}
		}
	}

	if len(expectedValues) == 0 {
		return false
	}

	answerVariants := languageVariants(submitted, lang)

	expectedVariants := make(map[string]struct{})
	for value := range expectedValues {
		for variant := range languageVariants(value, lang) {
			expectedVariants[variant] = struct{}{}
		}
	}

	for variant := range answerVariants {
		if _, ok := expectedVariants[variant]; ok {
			return true
		}
	}

	return composableFromAlternatives(textnorm.Normalize(submitted), expectedVariants)
}

// EvaluateForCard derives the expected value and compare language from the
// card's direction. Synonyms are defined only on the target-language side:
// forward reviews include them, reverse reviews never do.
func EvaluateForCard(submitted string, ctx CardContext) bool {
	if ctx.Direction == domain.DirectionForward {
		return Evaluate(submitted, ctx.Word, ctx.Synonyms, ctx.TargetLang)
	}
	return Evaluate(submitted, ctx.Translation, nil, ctx.SourceLang)
}

// expandExpectedValues splits an expected value into its normalized
// alternatives. When splitting yields nothing usable it falls back to the
// normalization of the whole string.
func expandExpectedValues(expected string) map[string]struct{} {
	values := make(map[string]struct{})

	whole := textnorm.Normalize(expected)
	if whole == "" {
		return values
	}

	for _, part := range altSeparatorsRe.Split(expected, -1) {
		if normalized := textnorm.Normalize(part); normalized != "" {
			values[normalized] = struct{}{}
		}
	}

	if len(values) == 0 {
		values[whole] = struct{}{}
	}

	return values
}

// languageVariants expands a value into its acceptable normalized forms for
// the given language. The language set is closed; every member is handled
// explicitly.
func languageVariants(value string, lang domain.Language) map[string]struct{} {
	switch lang {
	case domain.LanguageDE:
		return textnorm.GermanVariants(value)
	case domain.LanguageRU, domain.LanguageEN, domain.LanguageHY:
	}

	variants := make(map[string]struct{}, 1)
	if normalized := textnorm.Normalize(value); normalized != "" {
		variants[normalized] = struct{}{}
	}
	return variants
}

// synonymBase strips a trailing parenthetical annotation from a synonym
// entry.
func synonymBase(value string) string {
	return strings.TrimSpace(trailingParensRe.ReplaceAllString(value, ""))
}

// composableFromAlternatives reports whether the normalized answer, split
// into whitespace tokens, can be exactly partitioned into a concatenation of
// expected-variant phrases in any order or repetition. This accepts answers
// that list several accepted alternatives, like "срок крайний срок" against
// {"срок", "крайний срок"}. Implemented as an iterative reachability scan
// over token boundaries to keep stack depth flat on long answers.
func composableFromAlternatives(normalizedAnswer string, alternatives map[string]struct{}) bool {
	answerTokens := strings.Fields(normalizedAnswer)
	if len(answerTokens) == 0 {
		return false
	}

	phrases := make([][]string, 0, len(alternatives))
	for alt := range alternatives {
		if alt == "" {
			continue
		}
		phrases = append(phrases, strings.Fields(alt))
	}
	if len(phrases) == 0 {
		return false
	}

	reachable := make([]bool, len(answerTokens)+1)
	reachable[0] = true

	for pos := 0; pos < len(answerTokens); pos++ {
		if !reachable[pos] {
			continue
		}
		for _, phrase := range phrases {
			end := pos + len(phrase)
			if end > len(answerTokens) {
				continue
			}
			if tokensEqual(answerTokens[pos:end], phrase) {
				reachable[end] = true
			}
		}
	}

	return reachable[len(answerTokens)]
}

func tokensEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
