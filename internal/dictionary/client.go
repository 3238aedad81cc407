package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"codeberg.org/snonux/define/internal/lookup"
)

const (
	DefaultBaseURL      = "http://api.pearson.com/v2/dictionaries/ldoce5/entries"
	DefaultMediaBaseURL = "http://www.ldoceonline.com/media/english/breProns"

	sourceName = "definition"
)

// Config holds the endpoints of the dictionary service
type Config struct {
	BaseURL      string        // Headword lookup endpoint
	MediaBaseURL string        // Host and directory serving pronunciation files
	Timeout      time.Duration // Per request timeout, 0 means none
}

// DefaultConfig returns the public service endpoints
func DefaultConfig() *Config {
	return &Config{
		BaseURL:      DefaultBaseURL,
		MediaBaseURL: DefaultMediaBaseURL,
	}
}

// Player plays a media URL and blocks until playback has finished
type Player interface {
	Play(ctx context.Context, mediaURL string) error
}

// Client looks up headwords in the dictionary service
type Client struct {
	config     *Config
	httpClient *http.Client
	player     Player
	log        *slog.Logger
}

// NewClient creates a dictionary client. player may be nil when
// pronunciations are never played.
func NewClient(config *Config, player Player, logger *slog.Logger) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		player:     player,
		log:        logger.With("adapter", "dictionary"),
	}
}

// Define returns the definition, IPA, example and audio URL of phrase.
// A missing example or pronunciation leaves the field absent; a missing
// definition fails the lookup.
func (c *Client) Define(ctx context.Context, phrase string) (*lookup.Result, error) {
	entry, err := c.fetch(ctx, phrase)
	if err != nil {
		return nil, err
	}

	def, ok := extractDefinition(entry)
	if !ok {
		return nil, lookup.NewSourceError(sourceName, lookup.MsgDefinitionNotFound,
			fmt.Errorf("dictionary: no definition in first sense of %q", phrase))
	}

	result := &lookup.Result{
		Headword:   lookup.Ptr(phrase),
		Definition: lookup.Ptr(def),
	}
	if ipa, ok := extractPhonetic(entry); ok {
		result.PhoneticSpelling = lookup.Ptr(ipa)
	}
	if ex, ok := extractExample(entry); ok {
		result.Example = lookup.Ptr(ex)
	}
	if p, ok := extractAudioPath(entry); ok {
		result.AudioURL = lookup.Ptr(mediaURL(c.config.MediaBaseURL, p))
	}

	c.log.DebugContext(ctx, "dictionary entry extracted",
		slog.String("phrase", phrase),
		slog.Bool("phonetic", result.PhoneticSpelling != nil),
		slog.Bool("example", result.Example != nil),
		slog.Bool("audio", result.AudioURL != nil),
	)

	return result, nil
}

// Pronounce plays the pronunciation of phrase. It does not produce text.
func (c *Client) Pronounce(ctx context.Context, phrase string) error {
	entry, err := c.fetch(ctx, phrase)
	if err != nil {
		return err
	}

	p, ok := extractAudioPath(entry)
	if !ok {
		return lookup.NewSourceError(sourceName, lookup.MsgPronunciationNotFound,
			fmt.Errorf("dictionary: no audio asset for %q", phrase))
	}
	if c.player == nil {
		return lookup.NewSourceError("audio", lookup.MsgUnableToPlay,
			fmt.Errorf("dictionary: no media player configured"))
	}

	u := mediaURL(c.config.MediaBaseURL, p)
	c.log.DebugContext(ctx, "playing pronunciation", slog.String("url", u))

	if err := c.player.Play(ctx, u); err != nil {
		return lookup.NewSourceError("audio", lookup.MsgUnableToPlay, err)
	}
	return nil
}

// fetch requests the entries for phrase and returns the first one.
func (c *Client) fetch(ctx context.Context, phrase string) (*apiEntry, error) {
	reqURL := c.config.BaseURL + "?" + url.Values{"headword": {phrase}}.Encode()

	c.log.DebugContext(ctx, "dictionary request", slog.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, c.unavailable(fmt.Errorf("dictionary: create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.unavailable(fmt.Errorf("dictionary: request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.unavailable(fmt.Errorf("dictionary: unexpected status %d", resp.StatusCode))
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, c.unavailable(fmt.Errorf("dictionary: decode json: %w", err))
	}

	if body.Status != http.StatusOK {
		return nil, c.unavailable(fmt.Errorf("dictionary: service reported status %d", body.Status))
	}
	if len(body.Results) == 0 {
		return nil, c.unavailable(fmt.Errorf("dictionary: no entries for %q", phrase))
	}

	return &body.Results[0], nil
}

func (c *Client) unavailable(err error) error {
	return lookup.NewSourceError(sourceName, lookup.MsgDefinitionNotFound, err)
}
