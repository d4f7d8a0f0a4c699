package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Direction determines which side of a word pair is shown and which is
// expected: forward shows the translation and expects the target-language
// word; reverse shows the word and expects the translation.
type Direction string

// Possible card directions.
const (
	DirectionForward Direction = "forward"
	DirectionReverse Direction = "reverse"
)

// Valid reports whether the direction is forward or reverse.
func (d Direction) Valid() bool {
	return d == DirectionForward || d == DirectionReverse
}

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardUserIDEmpty is returned when a card's user ID is empty or nil.
	ErrCardUserIDEmpty = errors.New("card user ID cannot be empty")

	// ErrCardWordIDEmpty is returned when a card's word ID is empty or nil.
	ErrCardWordIDEmpty = errors.New("card word ID cannot be empty")

	// ErrCardSrsIndexInvalid is returned when a card's mastery index is
	// outside the scheduler's interval table.
	ErrCardSrsIndexInvalid = errors.New("card srs index out of range")
)

// maxSrsIndex mirrors srs.MaxIndex without importing the subpackage.
const maxSrsIndex = 20

// Card is one scheduled review unit: a (word, direction) combination with its
// position in the spaced-repetition interval table. Two cards exist per word,
// one per direction, both created at index 0 and due immediately. The srs
// index and next review time are only ever mutated by applying a scheduler
// transition; the outcome counters only ever increment.
type Card struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	WordID         uuid.UUID `json:"word_id"`
	PairID         uuid.UUID `json:"pair_id"`
	Direction      Direction `json:"direction"`
	SrsIndex       int       `json:"srs_index"`
	NextReviewAt   time.Time `json:"next_review_at"`
	CorrectCount   int       `json:"correct_count"`
	IncorrectCount int       `json:"incorrect_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewCard creates a single Card for the given word and direction, starting at
// mastery index 0 and due immediately. Returns an error if validation fails.
func NewCard(userID, wordID, pairID uuid.UUID, direction Direction) (*Card, error) {
	now := time.Now().UTC()
	card := &Card{
		ID:           uuid.New(),
		UserID:       userID,
		WordID:       wordID,
		PairID:       pairID,
		Direction:    direction,
		SrsIndex:     0,
		NextReviewAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// NewCardsForWord creates the forward and reverse cards for a freshly added
// word. Both start at index 0 and are due immediately.
func NewCardsForWord(word *Word) ([]*Card, error) {
	forward, err := NewCard(word.UserID, word.ID, word.PairID, DirectionForward)
	if err != nil {
		return nil, err
	}

	reverse, err := NewCard(word.UserID, word.ID, word.PairID, DirectionReverse)
	if err != nil {
		return nil, err
	}

	return []*Card{forward, reverse}, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.UserID == uuid.Nil {
		return ErrCardUserIDEmpty
	}

	if c.WordID == uuid.Nil {
		return ErrCardWordIDEmpty
	}

	if c.PairID == uuid.Nil {
		return ErrWordPairIDEmpty
	}

	if !c.Direction.Valid() {
		return ErrInvalidDirection
	}

	if c.SrsIndex < 0 || c.SrsIndex > maxSrsIndex {
		return ErrCardSrsIndexInvalid
	}

	return nil
}

// Due reports whether the card is eligible for review at the given time.
func (c *Card) Due(now time.Time) bool {
	return !c.NextReviewAt.After(now)
}
