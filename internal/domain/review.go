package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Review-specific validation errors
var (
	// ErrReviewIDEmpty is returned when a review ID is empty or nil.
	ErrReviewIDEmpty = errors.New("review ID cannot be empty")

	// ErrReviewCardIDEmpty is returned when a review's card ID is empty or nil.
	ErrReviewCardIDEmpty = errors.New("review card ID cannot be empty")
)

// Review is one recorded answer attempt against a card: the raw answer text,
// whether the validation engine accepted it, and how long the user took.
// Reviews are append-only.
type Review struct {
	ID             uuid.UUID `json:"id"`
	CardID         uuid.UUID `json:"card_id"`
	UserID         uuid.UUID `json:"user_id"`
	Answer         string    `json:"answer"`
	IsCorrect      bool      `json:"is_correct"`
	ResponseTimeMs *int      `json:"response_time_ms,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewReview creates a review event for the given card and answer.
// Returns an error if validation fails.
func NewReview(cardID, userID uuid.UUID, answer string, isCorrect bool, responseTimeMs *int) (*Review, error) {
	review := &Review{
		ID:             uuid.New(),
		CardID:         cardID,
		UserID:         userID,
		Answer:         answer,
		IsCorrect:      isCorrect,
		ResponseTimeMs: responseTimeMs,
		CreatedAt:      time.Now().UTC(),
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	return review, nil
}

// Validate checks if the Review has valid data.
func (r *Review) Validate() error {
	if r.ID == uuid.Nil {
		return ErrReviewIDEmpty
	}

	if r.CardID == uuid.Nil {
		return ErrReviewCardIDEmpty
	}

	if r.UserID == uuid.Nil {
		return ErrCardUserIDEmpty
	}

	return nil
}
