package thesaurus

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"codeberg.org/snonux/define/internal/lookup"
)

const (
	DefaultBaseURL           = "http://www.thesaurus.com/browse"
	DefaultContainerSelector = "#filters-0 .relevancy-list"
	DefaultItemSelector      = "span.text"

	sourceName = "thesaurus"
)

// Config holds the browse page location and the selectors used to find
// synonyms on it
type Config struct {
	BaseURL           string        // Browse page prefix, the phrase is appended as a path segment
	ContainerSelector string        // First match holds the synonym list
	ItemSelector      string        // Synonym elements inside the container
	Timeout           time.Duration // Per request timeout, 0 means none
}

// DefaultConfig returns the public browse page and its selectors
func DefaultConfig() *Config {
	return &Config{
		BaseURL:           DefaultBaseURL,
		ContainerSelector: DefaultContainerSelector,
		ItemSelector:      DefaultItemSelector,
	}
}

// Client fetches synonyms from the thesaurus
type Client struct {
	config     *Config
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a thesaurus client
func NewClient(config *Config, logger *slog.Logger) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		log:        logger.With("adapter", "thesaurus"),
	}
}

// Synonyms returns the synonyms of phrase in page order. An existing but
// empty list yields an empty, non-nil slice.
func (c *Client) Synonyms(ctx context.Context, phrase string) (*lookup.Result, error) {
	doc, err := c.fetch(ctx, phrase)
	if err != nil {
		return nil, lookup.NewSourceError(sourceName, lookup.MsgSynonymsNotFound, err)
	}

	synonyms, err := extractSynonyms(doc, c.config.ContainerSelector, c.config.ItemSelector)
	if err != nil {
		return nil, lookup.NewSourceError(sourceName, lookup.MsgSynonymsNotFound, err)
	}

	c.log.DebugContext(ctx, "thesaurus synonyms extracted",
		slog.String("phrase", phrase),
		slog.Int("count", len(synonyms)),
	)

	return &lookup.Result{Synonyms: synonyms}, nil
}

func (c *Client) fetch(ctx context.Context, phrase string) (*goquery.Document, error) {
	reqURL := strings.TrimRight(c.config.BaseURL, "/") + "/" + url.PathEscape(phrase)

	c.log.DebugContext(ctx, "thesaurus request", slog.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("thesaurus: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("thesaurus: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("thesaurus: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("thesaurus: parse html: %w", err)
	}
	return doc, nil
}

// extractSynonyms collects the text of every item inside the first
// container match. Elements without text are skipped.
func extractSynonyms(doc *goquery.Document, containerSelector, itemSelector string) ([]string, error) {
	container := doc.Find(containerSelector).First()
	if container.Length() == 0 {
		return nil, fmt.Errorf("thesaurus: no element matches %q", containerSelector)
	}

	synonyms := []string{}
	container.Find(itemSelector).Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			synonyms = append(synonyms, text)
		}
	})
	return synonyms, nil
}
