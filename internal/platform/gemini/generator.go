package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"text/template"
	"time"

	"google.golang.org/genai"

	"github.com/lpetrosyan/vocab-api/internal/config"
	"github.com/lpetrosyan/vocab-api/internal/domain"
	"github.com/lpetrosyan/vocab-api/internal/generation"
)

// ErrEmptyWord is returned when content generation is requested for an empty
// word.
var ErrEmptyWord = errors.New("word cannot be empty")

// promptTemplate asks the model for strict JSON so the response can be
// unmarshalled directly into responseSchema.
const promptTemplate = `You are a dictionary assistant for language learners.
The learner speaks {{.SourceLang}} and is studying {{.TargetLang}}.

For the {{.TargetLang}} word "{{.Word}}", respond with a single JSON object
and nothing else, using exactly these keys:

{
  "synonyms": ["up to 3 {{.TargetLang}} synonyms, each followed by its {{.SourceLang}} meaning in parentheses"],
  "part_of_speech": "noun|verb|adjective|adverb|phrase|other",
  "gender": "der|die|das, only for German nouns, otherwise empty string",
  "transcription": "pronunciation hint written in {{.SourceLang}} letters",
  "examples": [{"sentence": "short {{.TargetLang}} example", "translation": "its {{.SourceLang}} translation"}]
}

Give at most 2 examples. Use an empty string or empty list for anything you
cannot provide.`

// Generator implements generation.Generator using the Gemini API.
type Generator struct {
	logger   *slog.Logger
	config   config.LLMConfig
	template *template.Template
	client   *genai.Client
	model    string
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Gemini-backed generator from the LLM configuration.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	tmpl, err := template.New("word_content").Parse(promptTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", generation.ErrInvalidConfig, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger:   logger.With(slog.String("component", "gemini_generator")),
		config:   cfg,
		template: tmpl,
		client:   client,
		model:    cfg.ModelName,
	}, nil
}

// GenerateWordContent implements generation.Generator.
func (g *Generator) GenerateWordContent(
	ctx context.Context,
	word string,
	pair *domain.LanguagePair,
) (*generation.WordContent, error) {
	prompt, err := g.buildPrompt(word, pair)
	if err != nil {
		return nil, err
	}

	schema, err := g.callWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return contentFromSchema(schema, pair), nil
}

func (g *Generator) buildPrompt(word string, pair *domain.LanguagePair) (string, error) {
	if strings.TrimSpace(word) == "" {
		return "", ErrEmptyWord
	}
	if pair == nil {
		return "", fmt.Errorf("%w: language pair is nil", generation.ErrInvalidConfig)
	}

	var buf bytes.Buffer
	err := g.template.Execute(&buf, promptData{
		Word:       word,
		SourceLang: pair.SourceLang.DisplayName(),
		TargetLang: pair.TargetLang.DisplayName(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}

// callWithRetry calls the Gemini API with exponential backoff and jitter.
// Permanent errors (blocked content, unparseable response) are returned
// immediately; transient errors retry up to MaxRetries times.
func (g *Generator) callWithRetry(ctx context.Context, prompt string) (*responseSchema, error) {
	maxRetries := g.config.MaxRetries
	if maxRetries < 0 {
		maxRetries = 3
	}
	baseDelaySeconds := g.config.RetryDelaySeconds
	if baseDelaySeconds < 1 {
		baseDelaySeconds = 2
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for attempt := 0; ; attempt++ {
		schema, err := g.callOnce(ctx, prompt)
		if err == nil {
			return schema, nil
		}

		if errors.Is(err, generation.ErrContentBlocked) || errors.Is(err, generation.ErrInvalidResponse) {
			return nil, err
		}

		g.logger.Warn("Gemini API call failed",
			"error", err,
			"attempt", attempt+1,
			"max_attempts", maxRetries+1)

		if attempt >= maxRetries {
			return nil, fmt.Errorf("%w: exceeded maximum retry attempts (%d)",
				generation.ErrTransientFailure, maxRetries)
		}

		backoff := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitter := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoff * jitter * float64(time.Second))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}
}

func (g *Generator) callOnce(ctx context.Context, prompt string) (*responseSchema, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return nil, fmt.Errorf("%w: blocked by safety filters", generation.ErrContentBlocked)
	}

	text := resp.Text()
	var schema responseSchema
	if err := json.Unmarshal([]byte(text), &schema); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON response: %v", generation.ErrInvalidResponse, err)
	}

	return &schema, nil
}

// contentFromSchema maps the model's response onto WordContent, dropping
// fields that make no sense for the pair (gender outside German targets,
// examples without a sentence).
func contentFromSchema(schema *responseSchema, pair *domain.LanguagePair) *generation.WordContent {
	content := &generation.WordContent{
		PartOfSpeech:  strings.TrimSpace(schema.PartOfSpeech),
		Transcription: strings.TrimSpace(schema.Transcription),
	}

	if pair.TargetLang == domain.LanguageDE {
		gender := strings.ToLower(strings.TrimSpace(schema.Gender))
		switch gender {
		case "der", "die", "das":
			content.Gender = gender
		}
	}

	for _, s := range schema.Synonyms {
		if s = strings.TrimSpace(s); s != "" {
			content.Synonyms = append(content.Synonyms, s)
		}
	}

	for i, ex := range schema.Examples {
		sentence := strings.TrimSpace(ex.Sentence)
		if sentence == "" {
			continue
		}
		content.Examples = append(content.Examples, domain.Example{
			Sentence:    sentence,
			Translation: strings.TrimSpace(ex.Translation),
			SortOrder:   i,
		})
	}

	return content
}
