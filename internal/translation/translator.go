package translation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"codeberg.org/snonux/define/internal/lookup"
)

// Translator translates a phrase into a target language
type Translator interface {
	// Translate returns a result whose Translations hold one entry for lang
	Translate(ctx context.Context, phrase string, lang lookup.Language) (*lookup.Result, error)

	// Name returns the backend name
	Name() string
}

// Config selects and configures a translation backend
type Config struct {
	Provider string        // "glosbe", "openai" or "gemini"
	BaseURL  string        // Glosbe endpoint
	Timeout  time.Duration // Per request timeout, 0 means none

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string

	// Gemini-specific settings
	GeminiKey   string
	GeminiModel string
	GeminiURL   string // API endpoint override, empty for the public API
}

// DefaultConfig returns the glosbe backend configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "glosbe",
		BaseURL:     DefaultGlosbeURL,
		OpenAIModel: DefaultOpenAIModel,
		GeminiModel: DefaultGeminiModel,
	}
}

// NewTranslator creates the backend named by config.Provider
func NewTranslator(config *Config, logger *slog.Logger) (Translator, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	switch strings.ToLower(config.Provider) {
	case "", "glosbe":
		return NewGlosbeClient(config.BaseURL, config.Timeout, logger), nil
	case "openai":
		return NewOpenAITranslator(config.OpenAIKey, config.OpenAIModel, logger), nil
	case "gemini":
		return NewGeminiTranslator(config.GeminiKey, config.GeminiModel, config.GeminiURL, logger), nil
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}
}

// single wraps one translated text into a result
func single(lang lookup.Language, text string) *lookup.Result {
	return &lookup.Result{
		Translations: []lookup.Translation{{Language: lang, Text: text}},
	}
}

// prompt is shared by the chat model backends
func prompt(phrase string, lang lookup.Language) string {
	return fmt.Sprintf("Translate the English phrase '%s' to %s. Respond with only the %s translation, nothing else.",
		phrase, lang.Name, lang.Name)
}
