package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Word-specific validation errors
var (
	// ErrWordIDEmpty is returned when a word ID is empty or nil.
	ErrWordIDEmpty = errors.New("word ID cannot be empty")

	// ErrWordUserIDEmpty is returned when a word's user ID is empty or nil.
	ErrWordUserIDEmpty = errors.New("word user ID cannot be empty")

	// ErrWordPairIDEmpty is returned when a word's language pair ID is empty or nil.
	ErrWordPairIDEmpty = errors.New("word language pair ID cannot be empty")

	// ErrWordTextEmpty is returned when a word's target-language text is empty.
	ErrWordTextEmpty = errors.New("word text cannot be empty")

	// ErrWordTranslationEmpty is returned when a word's translation is empty.
	ErrWordTranslationEmpty = errors.New("word translation cannot be empty")
)

// Example is one usage sentence attached to a word, with its source-language
// translation.
type Example struct {
	Sentence    string `json:"sentence"`
	Translation string `json:"translation"`
	SortOrder   int    `json:"sort_order"`
}

// Word is one vocabulary entry inside a language pair. Text holds the
// target-language word; Translation the source-language meaning. Synonyms are
// target-language alternatives, each optionally carrying a source-language
// gloss in a trailing parenthetical (for example "schnell (быстрый)") which
// the answer validation engine strips before matching.
type Word struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	PairID        uuid.UUID  `json:"pair_id"`
	SetID         *uuid.UUID `json:"set_id,omitempty"`
	Text          string     `json:"text"`
	Translation   string     `json:"translation"`
	Synonyms      []string   `json:"synonyms,omitempty"`
	PartOfSpeech  string     `json:"part_of_speech,omitempty"`
	Gender        string     `json:"gender,omitempty"` // der/die/das for German targets
	Transcription string     `json:"transcription,omitempty"`
	Note          string     `json:"note,omitempty"`
	Examples      []Example  `json:"examples,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewWord creates a new Word with the given owner, pair and content.
// Returns an error if validation fails.
func NewWord(userID, pairID uuid.UUID, text, translation string) (*Word, error) {
	now := time.Now().UTC()
	word := &Word{
		ID:          uuid.New(),
		UserID:      userID,
		PairID:      pairID,
		Text:        strings.TrimSpace(text),
		Translation: strings.TrimSpace(translation),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := word.Validate(); err != nil {
		return nil, err
	}

	return word, nil
}

// Validate checks if the Word has valid data.
// Returns an error if any field fails validation.
func (w *Word) Validate() error {
	if w.ID == uuid.Nil {
		return ErrWordIDEmpty
	}

	if w.UserID == uuid.Nil {
		return ErrWordUserIDEmpty
	}

	if w.PairID == uuid.Nil {
		return ErrWordPairIDEmpty
	}

	if strings.TrimSpace(w.Text) == "" {
		return ErrWordTextEmpty
	}

	if strings.TrimSpace(w.Translation) == "" {
		return ErrWordTranslationEmpty
	}

	return nil
}
