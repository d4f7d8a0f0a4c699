package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrSetNameEmpty is returned when a vocabulary set's name is empty.
var ErrSetNameEmpty = errors.New("vocabulary set name cannot be empty")

// VocabularySet is an optional grouping of words within a language pair
// (a topic, a lesson, a textbook chapter). Due-card selection can be scoped
// to a single set.
type VocabularySet struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	PairID    uuid.UUID `json:"pair_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewVocabularySet creates a new set inside the given pair.
// Returns an error if validation fails.
func NewVocabularySet(userID, pairID uuid.UUID, name string) (*VocabularySet, error) {
	set := &VocabularySet{
		ID:        uuid.New(),
		UserID:    userID,
		PairID:    pairID,
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	return set, nil
}

// Validate checks if the VocabularySet has valid data.
func (s *VocabularySet) Validate() error {
	if s.ID == uuid.Nil {
		return ErrInvalidID
	}

	if s.UserID == uuid.Nil {
		return ErrUserIDEmpty
	}

	if s.PairID == uuid.Nil {
		return ErrPairIDEmpty
	}

	if s.Name == "" {
		return ErrSetNameEmpty
	}

	return nil
}
