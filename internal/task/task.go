// Package task runs background work on an in-process worker pool. Work
// arrives as events from the events package and leaves as executed tasks;
// nothing is persisted, so a task lost to a crash is simply regenerated the
// next time its trigger fires.
package task

import (
	"context"

	"github.com/google/uuid"
)

// Task type identifiers.
const (
	// TaskTypeWordEnrichment generates synonyms, grammar metadata and example
	// sentences for a vocabulary entry.
	TaskTypeWordEnrichment = "word_enrichment"
)

// Task is one unit of background work.
type Task interface {
	// ID returns the task's unique identifier.
	ID() uuid.UUID

	// Type returns the task type identifier.
	Type() string

	// Execute runs the task logic.
	Execute(ctx context.Context) error
}
