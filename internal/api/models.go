package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/lpetrosyan/vocab-api/internal/domain"
)

// Auth requests and responses

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest is the payload for exchanging a refresh token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse carries a token pair after registration, login or refresh.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

// Language pair requests and responses

// CreatePairRequest is the payload for creating a language pair.
type CreatePairRequest struct {
	SourceLang string `json:"source_lang" validate:"required,len=2"`
	TargetLang string `json:"target_lang" validate:"required,len=2"`
}

// PairResponse describes one language pair.
type PairResponse struct {
	ID         uuid.UUID `json:"id"`
	SourceLang string    `json:"source_lang"`
	TargetLang string    `json:"target_lang"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewPairResponse converts a domain pair to its API shape.
func NewPairResponse(pair *domain.LanguagePair) PairResponse {
	return PairResponse{
		ID:         pair.ID,
		SourceLang: string(pair.SourceLang),
		TargetLang: string(pair.TargetLang),
		CreatedAt:  pair.CreatedAt,
	}
}

// SetActivePairRequest selects the user's active pair.
type SetActivePairRequest struct {
	PairID uuid.UUID `json:"pair_id" validate:"required"`
}

// Word requests and responses

// CreateWordRequest is the payload for adding a word. Generate opts the word
// into background content enrichment; it is a no-op when the server runs
// without an LLM key.
type CreateWordRequest struct {
	PairID      uuid.UUID  `json:"pair_id"            validate:"required"`
	SetID       *uuid.UUID `json:"set_id,omitempty"`
	Text        string     `json:"text"               validate:"required,max=200"`
	Translation string     `json:"translation"        validate:"required,max=500"`
	Generate    bool       `json:"generate,omitempty"`
}

// UpdateWordRequest carries the mutable word fields; absent fields stay
// unchanged.
type UpdateWordRequest struct {
	Translation   *string           `json:"translation,omitempty"   validate:"omitempty,max=500"`
	Synonyms      *[]string         `json:"synonyms,omitempty"`
	PartOfSpeech  *string           `json:"part_of_speech,omitempty"`
	Gender        *string           `json:"gender,omitempty"        validate:"omitempty,oneof=der die das"`
	Transcription *string           `json:"transcription,omitempty"`
	Note          *string           `json:"note,omitempty"`
	Examples      *[]domain.Example `json:"examples,omitempty"`
	SetID         *uuid.UUID        `json:"set_id,omitempty"`
	ClearSet      bool              `json:"clear_set,omitempty"`
}

// WordResponse describes one vocabulary entry.
type WordResponse struct {
	ID            uuid.UUID        `json:"id"`
	PairID        uuid.UUID        `json:"pair_id"`
	SetID         *uuid.UUID       `json:"set_id,omitempty"`
	Text          string           `json:"text"`
	Translation   string           `json:"translation"`
	Synonyms      []string         `json:"synonyms,omitempty"`
	PartOfSpeech  string           `json:"part_of_speech,omitempty"`
	Gender        string           `json:"gender,omitempty"`
	Transcription string           `json:"transcription,omitempty"`
	Note          string           `json:"note,omitempty"`
	Examples      []domain.Example `json:"examples,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// NewWordResponse converts a domain word to its API shape.
func NewWordResponse(word *domain.Word) WordResponse {
	return WordResponse{
		ID:            word.ID,
		PairID:        word.PairID,
		SetID:         word.SetID,
		Text:          word.Text,
		Translation:   word.Translation,
		Synonyms:      word.Synonyms,
		PartOfSpeech:  word.PartOfSpeech,
		Gender:        word.Gender,
		Transcription: word.Transcription,
		Note:          word.Note,
		Examples:      word.Examples,
		CreatedAt:     word.CreatedAt,
	}
}

// Vocabulary set requests and responses

// CreateSetRequest is the payload for creating a vocabulary set.
type CreateSetRequest struct {
	PairID uuid.UUID `json:"pair_id" validate:"required"`
	Name   string    `json:"name"    validate:"required,max=100"`
}

// SetResponse describes one vocabulary set.
type SetResponse struct {
	ID        uuid.UUID `json:"id"`
	PairID    uuid.UUID `json:"pair_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSetResponse converts a domain set to its API shape.
func NewSetResponse(set *domain.VocabularySet) SetResponse {
	return SetResponse{
		ID:        set.ID,
		PairID:    set.PairID,
		Name:      set.Name,
		CreatedAt: set.CreatedAt,
	}
}

// Review requests and responses

// ReviewCardResponse is the due card handed to the client. The word's full
// content is withheld so the client cannot show the answer alongside the
// prompt.
type ReviewCardResponse struct {
	CardID       uuid.UUID        `json:"card_id"`
	WordID       uuid.UUID        `json:"word_id"`
	Direction    string           `json:"direction"`
	Prompt       string           `json:"prompt"`
	SrsIndex     int              `json:"srs_index"`
	NextReviewAt time.Time        `json:"next_review_at"`
	Examples     []domain.Example `json:"examples,omitempty"`
}

// SubmitAnswerRequest is the payload for answering a card.
type SubmitAnswerRequest struct {
	Answer         string `json:"answer"`
	ResponseTimeMs *int   `json:"response_time_ms,omitempty" validate:"omitempty,gte=0"`
}

// SubmitAnswerResponse is the outcome of a submitted answer.
type SubmitAnswerResponse struct {
	Correct      bool      `json:"correct"`
	ExpectedText string    `json:"expected_text"`
	SrsIndex     int       `json:"srs_index"`
	NextReviewAt time.Time `json:"next_review_at"`
}

// OverviewResponse summarizes a pair's review workload.
type OverviewResponse struct {
	Total        int        `json:"total"`
	Due          int        `json:"due"`
	NextReviewAt *time.Time `json:"next_review_at,omitempty"`
}
