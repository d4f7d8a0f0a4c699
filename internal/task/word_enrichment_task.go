package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lpetrosyan/vocab-api/internal/domain"
	"github.com/lpetrosyan/vocab-api/internal/generation"
	"github.com/lpetrosyan/vocab-api/internal/store"
)

// WordEnricher merges generated content into an existing word. Implemented
// by the word service; the indirection keeps this package off the service
// package's import graph.
type WordEnricher interface {
	EnrichWord(ctx context.Context, userID, wordID uuid.UUID, content *generation.WordContent) (*domain.Word, error)
}

// WordEnrichmentTask asks the generation provider for synonyms, grammar
// metadata and examples for one word and merges the result into the entry.
// User-entered fields always win over generated ones.
type WordEnrichmentTask struct {
	id        uuid.UUID
	wordID    uuid.UUID
	userID    uuid.UUID
	pairID    uuid.UUID
	wordStore store.WordStore
	pairStore store.PairStore
	generator generation.Generator
	enricher  WordEnricher
}

var _ Task = (*WordEnrichmentTask)(nil)

// NewWordEnrichmentTask creates an enrichment task for the given word.
func NewWordEnrichmentTask(
	wordID, userID, pairID uuid.UUID,
	wordStore store.WordStore,
	pairStore store.PairStore,
	generator generation.Generator,
	enricher WordEnricher,
) (*WordEnrichmentTask, error) {
	if wordStore == nil || pairStore == nil || generator == nil || enricher == nil {
		return nil, fmt.Errorf("word enrichment task dependencies cannot be nil")
	}
	if wordID == uuid.Nil || userID == uuid.Nil || pairID == uuid.Nil {
		return nil, fmt.Errorf("word enrichment task requires word, user and pair IDs")
	}

	return &WordEnrichmentTask{
		id:        uuid.New(),
		wordID:    wordID,
		userID:    userID,
		pairID:    pairID,
		wordStore: wordStore,
		pairStore: pairStore,
		generator: generator,
		enricher:  enricher,
	}, nil
}

// ID implements Task.ID.
func (t *WordEnrichmentTask) ID() uuid.UUID {
	return t.id
}

// Type implements Task.Type.
func (t *WordEnrichmentTask) Type() string {
	return TaskTypeWordEnrichment
}

// Execute implements Task.Execute. A word deleted between enqueue and
// execution is not an error; the task just has nothing left to do.
func (t *WordEnrichmentTask) Execute(ctx context.Context) error {
	word, err := t.wordStore.GetByID(ctx, t.userID, t.wordID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil
		}
		return fmt.Errorf("load word: %w", err)
	}

	pair, err := t.pairStore.GetByID(ctx, t.pairID)
	if err != nil {
		return fmt.Errorf("load pair: %w", err)
	}

	content, err := t.generator.GenerateWordContent(ctx, word.Text, pair)
	if err != nil {
		return fmt.Errorf("generate content for %q: %w", word.Text, err)
	}

	if _, err := t.enricher.EnrichWord(ctx, t.userID, t.wordID, content); err != nil {
		return fmt.Errorf("apply generated content: %w", err)
	}

	return nil
}
