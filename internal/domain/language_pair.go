package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// LanguagePair-specific validation errors
var (
	// ErrPairIDEmpty is returned when a language pair ID is empty or nil.
	ErrPairIDEmpty = errors.New("language pair ID cannot be empty")

	// ErrPairUserIDEmpty is returned when a language pair's user ID is empty or nil.
	ErrPairUserIDEmpty = errors.New("language pair user ID cannot be empty")
)

// LanguagePair scopes a user's vocabulary to one source/target language
// combination. Words, cards and review statistics all hang off a pair.
type LanguagePair struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	SourceLang Language  `json:"source_lang"`
	TargetLang Language  `json:"target_lang"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewLanguagePair creates a new LanguagePair for the given user and languages.
// Returns an error if validation fails.
func NewLanguagePair(userID uuid.UUID, source, target Language) (*LanguagePair, error) {
	pair := &LanguagePair{
		ID:         uuid.New(),
		UserID:     userID,
		SourceLang: source,
		TargetLang: target,
		CreatedAt:  time.Now().UTC(),
	}

	if err := pair.Validate(); err != nil {
		return nil, err
	}

	return pair, nil
}

// Validate checks if the LanguagePair has valid data.
// Returns an error if any field fails validation.
func (p *LanguagePair) Validate() error {
	if p.ID == uuid.Nil {
		return ErrPairIDEmpty
	}

	if p.UserID == uuid.Nil {
		return ErrPairUserIDEmpty
	}

	if !p.SourceLang.Valid() || !p.TargetLang.Valid() {
		return ErrInvalidLanguage
	}

	if p.SourceLang == p.TargetLang {
		return ErrSameLanguagePair
	}

	return nil
}
