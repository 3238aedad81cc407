package translation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/define/internal/lookup"
)

const DefaultOpenAIModel = openai.GPT4oMini

// OpenAITranslator translates phrases with an OpenAI chat model
type OpenAITranslator struct {
	apiKey string
	model  string
	client *openai.Client
	log    *slog.Logger
}

// NewOpenAITranslator creates a new OpenAI backed translator
func NewOpenAITranslator(apiKey, model string, logger *slog.Logger) *OpenAITranslator {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAITranslator{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
		log:    logger.With("adapter", "openai"),
	}
}

// Translate asks the chat model for a translation of phrase into lang
func (t *OpenAITranslator) Translate(ctx context.Context, phrase string, lang lookup.Language) (*lookup.Result, error) {
	if t.apiKey == "" {
		return nil, lookup.NewTranslationError(lang, fmt.Errorf("OpenAI API key not found"))
	}

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt(phrase, lang),
			},
		},
		MaxTokens:   50,
		Temperature: 0.3,
	}

	t.log.DebugContext(ctx, "openai request", slog.String("model", t.model), slog.String("lang", lang.Label))

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, lookup.NewTranslationError(lang, fmt.Errorf("OpenAI API error: %w", err))
	}

	if len(resp.Choices) == 0 {
		return nil, lookup.NewTranslationError(lang, fmt.Errorf("no translation returned"))
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return nil, lookup.NewTranslationError(lang, fmt.Errorf("empty translation returned"))
	}
	return single(lang, translation), nil
}

// Name returns the backend name
func (t *OpenAITranslator) Name() string {
	return "openai"
}
