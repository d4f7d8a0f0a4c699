// Package generation defines the boundary between the application core and
// external LLM providers used to enrich vocabulary entries.
package generation

import (
	"context"

	"github.com/lpetrosyan/vocab-api/internal/domain"
)

// WordContent is the enrichment a provider produces for one vocabulary entry.
// Fields left empty are simply not filled in; the caller keeps whatever the
// user entered manually. The translation itself is not generated: a word
// cannot be created without one, so providers only supplement around it.
type WordContent struct {
	// Synonyms are target-language alternatives. Each may carry a
	// source-language gloss in a trailing parenthetical, matching the format
	// the answer validation engine strips.
	Synonyms []string

	// PartOfSpeech is a coarse category (noun, verb, adjective, ...).
	PartOfSpeech string

	// Gender is the article for German nouns (der/die/das), empty otherwise.
	Gender string

	// Transcription is a pronunciation hint in the source language's script.
	Transcription string

	// Examples are usage sentences with their translations.
	Examples []domain.Example
}

// Generator produces enrichment content for a vocabulary entry.
type Generator interface {
	// GenerateWordContent creates synonyms, grammar metadata and example
	// sentences for the given target-language word. The pair tells the
	// provider which languages to produce.
	GenerateWordContent(ctx context.Context, word string, pair *domain.LanguagePair) (*WordContent, error)
}
