package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"

	"codeberg.org/snonux/define/internal/dictionary"
	"codeberg.org/snonux/define/internal/lookup"
	"codeberg.org/snonux/define/internal/thesaurus"
	"codeberg.org/snonux/define/internal/translation"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := LoadConfig(viper.New())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Dictionary.BaseURL != dictionary.DefaultBaseURL {
		t.Errorf("Dictionary.BaseURL = %q", cfg.Dictionary.BaseURL)
	}
	if cfg.Dictionary.MediaBaseURL != dictionary.DefaultMediaBaseURL {
		t.Errorf("Dictionary.MediaBaseURL = %q", cfg.Dictionary.MediaBaseURL)
	}
	if cfg.Thesaurus.BaseURL != thesaurus.DefaultBaseURL {
		t.Errorf("Thesaurus.BaseURL = %q", cfg.Thesaurus.BaseURL)
	}
	if cfg.Thesaurus.ContainerSelector != thesaurus.DefaultContainerSelector {
		t.Errorf("Thesaurus.ContainerSelector = %q", cfg.Thesaurus.ContainerSelector)
	}
	if cfg.Translation.Provider != "glosbe" {
		t.Errorf("Translation.Provider = %q", cfg.Translation.Provider)
	}
	if cfg.Translation.BaseURL != translation.DefaultGlosbeURL {
		t.Errorf("Translation.BaseURL = %q", cfg.Translation.BaseURL)
	}
	if cfg.Dictionary.Timeout != 0 {
		t.Errorf("Expected no timeout by default, got %v", cfg.Dictionary.Timeout)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", cfg.LogLevel)
	}

	want := []lookup.Source{lookup.SourceDefinition, lookup.SourceThesaurus, lookup.SourceFrench, lookup.SourceGerman}
	if len(cfg.DefaultSources) != len(want) {
		t.Fatalf("DefaultSources = %v, want %v", cfg.DefaultSources, want)
	}
	for i := range want {
		if cfg.DefaultSources[i] != want[i] {
			t.Errorf("DefaultSources[%d] = %v, want %v", i, cfg.DefaultSources[i], want[i])
		}
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("http.timeout", "3s")
	v.Set("lookup.default_sources", []string{"definition", "german"})
	v.Set("log.verbose", true)
	v.Set("audio.player", "mpg123")
	v.Set("translation.gemini_url", "http://gemini.test/")

	cfg, err := LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Thesaurus.Timeout != 3*time.Second || cfg.Translation.Timeout != 3*time.Second {
		t.Errorf("Expected timeout to apply to every client, got %v/%v", cfg.Thesaurus.Timeout, cfg.Translation.Timeout)
	}
	if len(cfg.DefaultSources) != 2 || cfg.DefaultSources[1] != lookup.SourceGerman {
		t.Errorf("DefaultSources = %v", cfg.DefaultSources)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected verbose to force debug, got %q", cfg.LogLevel)
	}
	if cfg.Player != "mpg123" {
		t.Errorf("Player = %q", cfg.Player)
	}
	if cfg.Translation.GeminiURL != "http://gemini.test/" {
		t.Errorf("Translation.GeminiURL = %q", cfg.Translation.GeminiURL)
	}
}

func TestLoadConfig_UnknownSource(t *testing.T) {
	v := viper.New()
	v.Set("lookup.default_sources", []string{"definition", "spanish"})

	if _, err := LoadConfig(v); err == nil {
		t.Error("Expected error for unknown source")
	}
}

func TestLoadConfig_Timeout(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    time.Duration
		wantErr bool
	}{
		{"bare integer is seconds", 10, 10 * time.Second, false},
		{"bare float is seconds", 1.5, 1500 * time.Millisecond, false},
		{"numeric string is seconds", "7", 7 * time.Second, false},
		{"duration string", "250ms", 250 * time.Millisecond, false},
		{"compound duration", "1m30s", 90 * time.Second, false},
		{"zero disables", 0, 0, false},
		{"negative", -5, 0, true},
		{"garbage", "soon", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set("http.timeout", tt.value)

			cfg, err := LoadConfig(v)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %v", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if cfg.Dictionary.Timeout != tt.want {
				t.Errorf("Timeout = %v, want %v", cfg.Dictionary.Timeout, tt.want)
			}
		})
	}
}

func TestLoadConfig_TimeoutFromFile(t *testing.T) {
	v := viper.New()
	if err := InitConfig(v, testConfigFile(t, "http:\n  timeout: 10\n")); err != nil {
		t.Fatalf("InitConfig() error = %v", err)
	}

	cfg, err := LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Thesaurus.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Thesaurus.Timeout)
	}
}

func testConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "define.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}
