package translation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"codeberg.org/snonux/define/internal/lookup"
)

const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiTranslator translates phrases with a Google Gemini model
type GeminiTranslator struct {
	apiKey  string
	model   string
	baseURL string
	log     *slog.Logger
}

// NewGeminiTranslator creates a new Gemini backed translator. An empty
// baseURL uses the public API endpoint.
func NewGeminiTranslator(apiKey, model, baseURL string, logger *slog.Logger) *GeminiTranslator {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiTranslator{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		log:     logger.With("adapter", "gemini"),
	}
}

// Translate asks the model for a translation of phrase into lang
func (g *GeminiTranslator) Translate(ctx context.Context, phrase string, lang lookup.Language) (*lookup.Result, error) {
	if g.apiKey == "" {
		return nil, lookup.NewTranslationError(lang, fmt.Errorf("Gemini API key not found"))
	}

	cfg := &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if g.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, lookup.NewTranslationError(lang, fmt.Errorf("gemini: create client: %w", err))
	}

	g.log.DebugContext(ctx, "gemini request", slog.String("model", g.model), slog.String("lang", lang.Label))

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt(phrase, lang)), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.3),
		MaxOutputTokens: 50,
	})
	if err != nil {
		return nil, lookup.NewTranslationError(lang, fmt.Errorf("gemini: generate content: %w", err))
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return nil, lookup.NewTranslationError(lang, fmt.Errorf("gemini: empty translation returned"))
	}
	return single(lang, translation), nil
}

// Name returns the backend name
func (g *GeminiTranslator) Name() string {
	return "gemini"
}
