package testutil

import (
	"context"
	"fmt"

	"codeberg.org/snonux/define/internal/lookup"
)

// MockDefinitionSource mocks the dictionary client
type MockDefinitionSource struct {
	Result       *lookup.Result
	Err          error
	PronounceErr error
	Calls        []string
}

// Define mocks a definition lookup
func (m *MockDefinitionSource) Define(ctx context.Context, phrase string) (*lookup.Result, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("DEFINE %s", phrase))
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result == nil {
		return &lookup.Result{}, nil
	}
	return m.Result, nil
}

// Pronounce mocks pronunciation playback
func (m *MockDefinitionSource) Pronounce(ctx context.Context, phrase string) error {
	m.Calls = append(m.Calls, fmt.Sprintf("PRONOUNCE %s", phrase))
	return m.PronounceErr
}

// MockSynonymSource mocks the thesaurus client
type MockSynonymSource struct {
	Items []string
	Err   error
	Calls []string
}

// Synonyms mocks a thesaurus lookup
func (m *MockSynonymSource) Synonyms(ctx context.Context, phrase string) (*lookup.Result, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("SYNONYMS %s", phrase))
	if m.Err != nil {
		return nil, m.Err
	}
	synonyms := m.Items
	if synonyms == nil {
		synonyms = []string{}
	}
	return &lookup.Result{Synonyms: synonyms}, nil
}

// MockTranslator mocks a translation backend. Translations and Errors are
// keyed by language label ("fr", "de").
type MockTranslator struct {
	Translations map[string]string
	Errors       map[string]error
	Calls        []string
}

// Translate mocks translating a phrase
func (m *MockTranslator) Translate(ctx context.Context, phrase string, lang lookup.Language) (*lookup.Result, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("TRANSLATE %s (%s)", phrase, lang.Label))

	if err, ok := m.Errors[lang.Label]; ok {
		return nil, err
	}

	text, ok := m.Translations[lang.Label]
	if !ok {
		text = fmt.Sprintf("mock translation of %s", phrase)
	}
	return &lookup.Result{
		Translations: []lookup.Translation{{Language: lang, Text: text}},
	}, nil
}

// MockPlayer mocks the media player
type MockPlayer struct {
	Err   error
	Calls []string
}

// Play records the media URL
func (m *MockPlayer) Play(ctx context.Context, mediaURL string) error {
	m.Calls = append(m.Calls, fmt.Sprintf("PLAY %s", mediaURL))
	return m.Err
}

// Name returns the mock player name
func (m *MockPlayer) Name() string {
	return "mock"
}
