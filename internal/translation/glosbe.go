package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"codeberg.org/snonux/define/internal/lookup"
)

const (
	DefaultGlosbeURL = "https://glosbe.com/gapi/translate"

	sourceLanguage = "eng"
)

// glosbeResponse keeps the candidate list raw so that a failed result
// flag is reported regardless of what the rest of the payload looks like.
type glosbeResponse struct {
	Result string          `json:"result"`
	Tuc    json.RawMessage `json:"tuc"`
}

type glosbeCandidate struct {
	Phrase *glosbePhrase `json:"phrase"`
}

type glosbePhrase struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// GlosbeClient translates phrases with the glosbe translation API
type GlosbeClient struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewGlosbeClient creates a glosbe backed translator
func NewGlosbeClient(baseURL string, timeout time.Duration, logger *slog.Logger) *GlosbeClient {
	if baseURL == "" {
		baseURL = DefaultGlosbeURL
	}
	return &GlosbeClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "glosbe"),
	}
}

// Translate takes the first candidate translation of phrase into lang.
func (g *GlosbeClient) Translate(ctx context.Context, phrase string, lang lookup.Language) (*lookup.Result, error) {
	text, err := g.translate(ctx, phrase, lang)
	if err != nil {
		return nil, lookup.NewTranslationError(lang, err)
	}
	return single(lang, text), nil
}

// Name returns the backend name
func (g *GlosbeClient) Name() string {
	return "glosbe"
}

func (g *GlosbeClient) translate(ctx context.Context, phrase string, lang lookup.Language) (string, error) {
	params := url.Values{}
	params.Set("from", sourceLanguage)
	params.Set("dest", lang.Code)
	params.Set("phrase", phrase)
	params.Set("format", "json")
	reqURL := g.baseURL + "?" + params.Encode()

	g.log.DebugContext(ctx, "glosbe request", slog.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("glosbe: create request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("glosbe: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("glosbe: unexpected status %d", resp.StatusCode)
	}

	var body glosbeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("glosbe: decode json: %w", err)
	}

	if body.Result != "ok" {
		return "", fmt.Errorf("glosbe: result %q", body.Result)
	}

	var candidates []glosbeCandidate
	if err := json.Unmarshal(body.Tuc, &candidates); err != nil {
		return "", fmt.Errorf("glosbe: decode candidates: %w", err)
	}
	if len(candidates) == 0 || candidates[0].Phrase == nil {
		return "", fmt.Errorf("glosbe: no candidate translation for %q", phrase)
	}

	text := strings.TrimSpace(candidates[0].Phrase.Text)
	if text == "" {
		return "", fmt.Errorf("glosbe: empty candidate translation for %q", phrase)
	}

	g.log.DebugContext(ctx, "glosbe translation",
		slog.String("phrase", phrase),
		slog.String("dest", lang.Code),
		slog.Int("candidates", len(candidates)),
	)

	return text, nil
}
