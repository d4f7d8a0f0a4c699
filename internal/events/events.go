package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types dispatched through the emitter.
const (
	// TypeWordCreated requests background enrichment of a freshly added word
	// (synonyms, grammar metadata, examples from the generation provider).
	TypeWordCreated = "word_created"
)

// WordCreatedPayload is the payload carried by a TypeWordCreated event.
type WordCreatedPayload struct {
	WordID uuid.UUID `json:"word_id"`
	UserID uuid.UUID `json:"user_id"`
	PairID uuid.UUID `json:"pair_id"`
}

// TaskRequestEvent carries a request for background work. The payload is kept
// as raw JSON so emitters need no dependency on the task package.
type TaskRequestEvent struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *TaskRequestEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewTaskRequestEvent creates a TaskRequestEvent with the given type and
// payload.
func NewTaskRequestEvent(eventType string, payload interface{}) (*TaskRequestEvent, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &TaskRequestEvent{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// EventHandler processes events dispatched by an emitter.
type EventHandler interface {
	// HandleEvent processes the given event.
	HandleEvent(ctx context.Context, event *TaskRequestEvent) error
}

// EventEmitter publishes events to registered handlers. Services emit through
// this interface without knowing who listens.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *TaskRequestEvent) error
}
