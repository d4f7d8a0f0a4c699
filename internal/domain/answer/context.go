package answer

import "github.com/lpetrosyan/vocab-api/internal/domain"

// CardContext describes one evaluation of an answer against a card. It is
// constructed per validation call and never persisted.
type CardContext struct {
	Direction  domain.Direction
	SourceLang domain.Language
	TargetLang domain.Language

	// Word is the target-language word; Translation the source-language
	// meaning. Synonyms are target-language alternatives and apply only to
	// forward-direction reviews.
	Word        string
	Translation string
	Synonyms    []string
}

// ContextForCard assembles the evaluation context from a card, its word and
// the owning language pair.
func ContextForCard(card *domain.Card, word *domain.Word, pair *domain.LanguagePair) CardContext {
	return CardContext{
		Direction:   card.Direction,
		SourceLang:  pair.SourceLang,
		TargetLang:  pair.TargetLang,
		Word:        word.Text,
		Translation: word.Translation,
		Synonyms:    word.Synonyms,
	}
}
