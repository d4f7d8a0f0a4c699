package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lpetrosyan/vocab-api/internal/events"
	"github.com/lpetrosyan/vocab-api/internal/generation"
	"github.com/lpetrosyan/vocab-api/internal/ratelimit"
	"github.com/lpetrosyan/vocab-api/internal/store"
)

// EventHandler turns word-created events into enrichment tasks on the
// runner's queue. Unknown event types are ignored so new events can be added
// without touching this handler.
type EventHandler struct {
	runner    *Runner
	wordStore store.WordStore
	pairStore store.PairStore
	generator generation.Generator
	enricher  WordEnricher
	limiter   *ratelimit.Limiter
	logger    *slog.Logger
}

var _ events.EventHandler = (*EventHandler)(nil)

// NewEventHandler creates an EventHandler wired to the given runner and task
// dependencies. The limiter caps how often each user can trigger generation;
// a nil limiter disables that cap.
func NewEventHandler(
	runner *Runner,
	wordStore store.WordStore,
	pairStore store.PairStore,
	generator generation.Generator,
	enricher WordEnricher,
	limiter *ratelimit.Limiter,
	logger *slog.Logger,
) *EventHandler {
	if runner == nil || wordStore == nil || pairStore == nil || generator == nil || enricher == nil {
		// ALLOW-PANIC: constructor enforcing required dependencies
		panic("event handler dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &EventHandler{
		runner:    runner,
		wordStore: wordStore,
		pairStore: pairStore,
		generator: generator,
		enricher:  enricher,
		limiter:   limiter,
		logger:    logger.With(slog.String("component", "task_event_handler")),
	}
}

// HandleEvent implements events.EventHandler.
func (h *EventHandler) HandleEvent(ctx context.Context, event *events.TaskRequestEvent) error {
	if event.Type != events.TypeWordCreated {
		return nil
	}

	var payload events.WordCreatedPayload
	if err := event.UnmarshalPayload(&payload); err != nil {
		return fmt.Errorf("decode word-created payload: %w", err)
	}

	if h.limiter != nil && !h.limiter.Allow(payload.UserID) {
		h.logger.Warn("skipping enrichment, generation budget exhausted",
			"word_id", payload.WordID,
			"user_id", payload.UserID,
			"retry_after", h.limiter.RetryAfter(payload.UserID))
		return nil
	}

	t, err := NewWordEnrichmentTask(
		payload.WordID, payload.UserID, payload.PairID,
		h.wordStore, h.pairStore, h.generator, h.enricher)
	if err != nil {
		return fmt.Errorf("build enrichment task: %w", err)
	}

	if err := h.runner.Submit(t); err != nil {
		// Enrichment is best-effort; a full queue should not fail the word
		// creation that emitted the event.
		h.logger.Warn("dropping enrichment task",
			"error", err,
			"word_id", payload.WordID)
		return nil
	}

	h.logger.Debug("enrichment task queued",
		"task_id", t.ID(),
		"word_id", payload.WordID)
	return nil
}
