package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"codeberg.org/snonux/define/internal/dictionary"
	"codeberg.org/snonux/define/internal/lookup"
	"codeberg.org/snonux/define/internal/thesaurus"
	"codeberg.org/snonux/define/internal/translation"
)

// Config is the resolved configuration of one invocation
type Config struct {
	Dictionary     *dictionary.Config
	Thesaurus      *thesaurus.Config
	Translation    *translation.Config
	Player         string
	DefaultSources []lookup.Source
	LogLevel       string
	LogFormat      string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.url", dictionary.DefaultBaseURL)
	v.SetDefault("dictionary.media_url", dictionary.DefaultMediaBaseURL)
	v.SetDefault("thesaurus.url", thesaurus.DefaultBaseURL)
	v.SetDefault("thesaurus.container_selector", thesaurus.DefaultContainerSelector)
	v.SetDefault("thesaurus.item_selector", thesaurus.DefaultItemSelector)
	v.SetDefault("translation.provider", "glosbe")
	v.SetDefault("translation.url", translation.DefaultGlosbeURL)
	v.SetDefault("translation.openai_model", translation.DefaultOpenAIModel)
	v.SetDefault("translation.gemini_model", translation.DefaultGeminiModel)
	v.SetDefault("http.timeout", "0")
	v.SetDefault("lookup.default_sources", []string{"definition", "thesaurus", "french", "german"})
	v.SetDefault("log.level", "error")
	v.SetDefault("log.format", "text")
}

// LoadConfig reads the configuration from v
func LoadConfig(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	sources, err := lookup.ParseSources(v.GetStringSlice("lookup.default_sources"))
	if err != nil {
		return nil, err
	}

	timeout, err := parseTimeout(v.GetString("http.timeout"))
	if err != nil {
		return nil, err
	}

	level := v.GetString("log.level")
	if v.GetBool("log.verbose") {
		level = "debug"
	}

	return &Config{
		Dictionary: &dictionary.Config{
			BaseURL:      v.GetString("dictionary.url"),
			MediaBaseURL: v.GetString("dictionary.media_url"),
			Timeout:      timeout,
		},
		Thesaurus: &thesaurus.Config{
			BaseURL:           v.GetString("thesaurus.url"),
			ContainerSelector: v.GetString("thesaurus.container_selector"),
			ItemSelector:      v.GetString("thesaurus.item_selector"),
			Timeout:           timeout,
		},
		Translation: &translation.Config{
			Provider:    v.GetString("translation.provider"),
			BaseURL:     v.GetString("translation.url"),
			Timeout:     timeout,
			OpenAIKey:   GetOpenAIKey(v),
			OpenAIModel: v.GetString("translation.openai_model"),
			GeminiKey:   GetGeminiKey(v),
			GeminiModel: v.GetString("translation.gemini_model"),
			GeminiURL:   v.GetString("translation.gemini_url"),
		},
		Player:         v.GetString("audio.player"),
		DefaultSources: sources,
		LogLevel:       level,
		LogFormat:      v.GetString("log.format"),
	}, nil
}

// parseTimeout accepts a duration such as "10s" or "1m30s", or a bare
// number of seconds.
func parseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("invalid http.timeout %q: must not be negative", s)
		}
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid http.timeout %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid http.timeout %q: must not be negative", s)
	}
	return d, nil
}
