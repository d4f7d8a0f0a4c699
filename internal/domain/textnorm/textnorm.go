// Package textnorm provides the canonical text forms the answer validation
// engine and the approximate word lookup compare against. All functions are
// pure: same input, same output, no locale or global state.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	// Anything that is not a letter, digit, underscore or whitespace folds
	// to a single space. \p{L}/\p{N} keep Cyrillic, Latin and Armenian
	// letters intact.
	punctuationRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)
	whitespaceRe  = regexp.MustCompile(`\s+`)

	germanArticleRe = regexp.MustCompile(`(?i)^(?:der|die|das)\s+`)
)

// Normalize produces the canonical comparable form of free text: lowercase,
// punctuation runs folded to one space, whitespace collapsed, trimmed.
func Normalize(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	normalized = punctuationRe.ReplaceAllString(normalized, " ")
	normalized = whitespaceRe.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// StripGermanArticle removes a single leading der/die/das token
// (case-insensitive). Text without a leading article is returned unchanged.
func StripGermanArticle(text string) string {
	return strings.TrimSpace(germanArticleRe.ReplaceAllString(text, ""))
}

// GermanVariants returns the normalized form of text together with its
// article-stripped form when stripping changes the string; one or two
// variants. Empty input yields an empty set.
func GermanVariants(text string) map[string]struct{} {
	base := Normalize(text)
	if base == "" {
		return map[string]struct{}{}
	}

	variants := map[string]struct{}{base: {}}
	if stripped := StripGermanArticle(base); stripped != "" {
		variants[stripped] = struct{}{}
	}
	return variants
}

// SearchVariants returns the broader variant set used for approximate word
// lookup: the normalized form, the form with internal spaces removed, and the
// article-stripped form. Lookup only; never used to score answer correctness.
func SearchVariants(text string) map[string]struct{} {
	base := Normalize(text)
	if base == "" {
		return map[string]struct{}{}
	}

	variants := map[string]struct{}{base: {}}

	if concatenated := strings.ReplaceAll(base, " ", ""); concatenated != "" {
		variants[concatenated] = struct{}{}
	}

	if stripped := StripGermanArticle(base); stripped != "" {
		variants[stripped] = struct{}{}
	}

	return variants
}
