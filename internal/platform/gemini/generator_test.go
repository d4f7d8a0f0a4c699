package gemini

import (
	"testing"
	"text/template"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpetrosyan/vocab-api/internal/domain"
)

func testPair(t *testing.T, source, target domain.Language) *domain.LanguagePair {
	t.Helper()
	pair, err := domain.NewLanguagePair(uuid.New(), source, target)
	require.NoError(t, err)
	return pair
}

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	tmpl, err := template.New("word_content").Parse(promptTemplate)
	require.NoError(t, err)
	return &Generator{template: tmpl}
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	g := testGenerator(t)
	pair := testPair(t, domain.LanguageRU, domain.LanguageDE)

	prompt, err := g.buildPrompt("Hund", pair)
	require.NoError(t, err)

	assert.Contains(t, prompt, `"Hund"`)
	assert.Contains(t, prompt, "Deutsch")
	assert.Contains(t, prompt, "Русский")
}

func TestBuildPrompt_EmptyWord(t *testing.T) {
	t.Parallel()

	g := testGenerator(t)
	pair := testPair(t, domain.LanguageRU, domain.LanguageDE)

	_, err := g.buildPrompt("   ", pair)
	assert.ErrorIs(t, err, ErrEmptyWord)
}

func TestContentFromSchema(t *testing.T) {
	t.Parallel()

	schema := &responseSchema{
		Synonyms:      []string{"Köter (пёс)", "  ", "Vierbeiner (четвероногий)"},
		PartOfSpeech:  "noun",
		Gender:        " Der ",
		Transcription: "хунд",
		Examples: []exampleSchema{
			{Sentence: "Der Hund bellt.", Translation: "Собака лает."},
			{Sentence: "   ", Translation: "dropped"},
		},
	}

	content := contentFromSchema(schema, testPair(t, domain.LanguageRU, domain.LanguageDE))

	assert.Equal(t, []string{"Köter (пёс)", "Vierbeiner (четвероногий)"}, content.Synonyms)
	assert.Equal(t, "noun", content.PartOfSpeech)
	assert.Equal(t, "der", content.Gender)
	assert.Equal(t, "хунд", content.Transcription)
	require.Len(t, content.Examples, 1)
	assert.Equal(t, "Der Hund bellt.", content.Examples[0].Sentence)
}

func TestContentFromSchema_GenderOnlyForGermanTargets(t *testing.T) {
	t.Parallel()

	schema := &responseSchema{PartOfSpeech: "noun", Gender: "der"}

	content := contentFromSchema(schema, testPair(t, domain.LanguageRU, domain.LanguageEN))
	assert.Empty(t, content.Gender)
}

func TestContentFromSchema_RejectsUnknownGender(t *testing.T) {
	t.Parallel()

	schema := &responseSchema{PartOfSpeech: "noun", Gender: "le"}

	content := contentFromSchema(schema, testPair(t, domain.LanguageRU, domain.LanguageDE))
	assert.Empty(t, content.Gender)
}
