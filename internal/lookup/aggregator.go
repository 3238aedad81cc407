package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefinitionSource looks up definitions and plays pronunciations
type DefinitionSource interface {
	Define(ctx context.Context, phrase string) (*Result, error)
	Pronounce(ctx context.Context, phrase string) error
}

// SynonymSource looks up synonyms
type SynonymSource interface {
	Synonyms(ctx context.Context, phrase string) (*Result, error)
}

// TranslationSource translates a phrase into a target language
type TranslationSource interface {
	Translate(ctx context.Context, phrase string, lang Language) (*Result, error)
}

// Aggregator runs the sources a mode asks for, one after another, and
// merges their results. It never returns a partial report: the first
// failing source aborts the lookup and its error is returned unchanged.
type Aggregator struct {
	definitions  DefinitionSource
	synonyms     SynonymSource
	translations TranslationSource
	defaults     []Source
	log          *slog.Logger
}

// NewAggregator creates an aggregator. An empty defaults list falls back
// to DefaultSources.
func NewAggregator(definitions DefinitionSource, synonyms SynonymSource, translations TranslationSource, defaults []Source, logger *slog.Logger) *Aggregator {
	if len(defaults) == 0 {
		defaults = DefaultSources
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Aggregator{
		definitions:  definitions,
		synonyms:     synonyms,
		translations: translations,
		defaults:     defaults,
		log:          logger.With("component", "aggregator"),
	}
}

// Lookup consults the sources selected by mode for phrase.
func (a *Aggregator) Lookup(ctx context.Context, mode Mode, phrase string) (*Result, error) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return nil, ErrNoPhraseGiven
	}

	a.log.DebugContext(ctx, "lookup", slog.String("mode", mode.String()), slog.String("phrase", phrase))

	switch mode {
	case ModeDefinition:
		r, err := a.definitions.Define(ctx, phrase)
		if err != nil {
			return nil, a.fail(ctx, err)
		}
		return &Result{
			Headword:         r.Headword,
			PhoneticSpelling: r.PhoneticSpelling,
			Definition:       r.Definition,
		}, nil

	case ModeExample:
		r, err := a.definitions.Define(ctx, phrase)
		if err != nil {
			return nil, a.fail(ctx, err)
		}
		return &Result{Headword: r.Headword, Example: r.Example}, nil

	case ModePronounce:
		if err := a.definitions.Pronounce(ctx, phrase); err != nil {
			return nil, a.fail(ctx, err)
		}
		return &Result{}, nil

	case ModeThesaurus:
		return a.fetch(ctx, SourceThesaurus, phrase)

	case ModeFrench:
		return a.fetch(ctx, SourceFrench, phrase)

	case ModeGerman:
		return a.fetch(ctx, SourceGerman, phrase)

	case ModeAll:
		combined := &Result{}
		for _, src := range a.defaults {
			r, err := a.fetch(ctx, src, phrase)
			if err != nil {
				return nil, err
			}
			combined.Merge(r)
		}
		return combined, nil

	default:
		return nil, fmt.Errorf("unsupported lookup mode: %s", mode)
	}
}

func (a *Aggregator) fetch(ctx context.Context, src Source, phrase string) (*Result, error) {
	var (
		r   *Result
		err error
	)
	switch src {
	case SourceDefinition:
		r, err = a.definitions.Define(ctx, phrase)
	case SourceThesaurus:
		r, err = a.synonyms.Synonyms(ctx, phrase)
	case SourceFrench:
		r, err = a.translations.Translate(ctx, phrase, French)
	case SourceGerman:
		r, err = a.translations.Translate(ctx, phrase, German)
	default:
		return nil, fmt.Errorf("unknown lookup source: %q", src)
	}
	if err != nil {
		return nil, a.fail(ctx, err)
	}
	return r, nil
}

// fail logs the cause of a source failure and hands the error back as is.
func (a *Aggregator) fail(ctx context.Context, err error) error {
	var lerr *Error
	if errors.As(err, &lerr) && lerr.Err != nil {
		a.log.DebugContext(ctx, "source failed",
			slog.String("source", lerr.Source),
			slog.String("kind", lerr.Kind.String()),
			slog.String("cause", lerr.Err.Error()),
		)
	}
	return err
}
