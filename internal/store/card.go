package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/lpetrosyan/vocab-api/internal/domain"
	"github.com/lpetrosyan/vocab-api/internal/domain/srs"
)

// CardOverview summarizes a pair's review workload: how many cards exist, how
// many are currently due, and when the next one comes up (nil when the pair
// has no cards).
type CardOverview struct {
	Total        int        `json:"total"`
	Due          int        `json:"due"`
	NextReviewAt *time.Time `json:"next_review_at,omitempty"`
}

// CardStore defines the interface for card persistence.
//
// "Due" means next_review_at <= now. Whenever multiple cards are due, they
// are returned ordered by next_review_at ascending; implementations enforce
// this in SQL.
type CardStore interface {
	// CreateMultiple saves multiple cards. Run it inside a transaction when
	// the cards must appear atomically with their word (RunInTransaction +
	// WithTx).
	CreateMultiple(ctx context.Context, cards []*domain.Card) error

	// GetByID retrieves a card by ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// NextDue returns the earliest-overdue card for the scope, or
	// ErrCardNotFound when nothing is due. setID narrows the scope to one
	// vocabulary set when non-nil.
	NextDue(ctx context.Context, userID, pairID uuid.UUID, setID *uuid.UUID, now time.Time) (*domain.Card, error)

	// ListDue returns up to limit due cards for the scope, earliest first.
	ListDue(ctx context.Context, userID, pairID uuid.UUID, setID *uuid.UUID, now time.Time, limit int) ([]*domain.Card, error)

	// Overview reports total/due counts and the next scheduled review for
	// the scope.
	Overview(ctx context.Context, userID, pairID uuid.UUID, setID *uuid.UUID, now time.Time) (*CardOverview, error)

	// ApplyReview persists a scheduler transition: the card's new mastery
	// index and due time, plus an increment of the matching outcome counter.
	// Counters never reset. Returns ErrCardNotFound if the card does not
	// exist.
	ApplyReview(ctx context.Context, cardID uuid.UUID, state srs.State, correct bool) error

	// WithTx returns a CardStore bound to the given transaction.
	WithTx(tx *sql.Tx) CardStore
}
