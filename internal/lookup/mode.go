package lookup

import (
	"fmt"
	"strings"
)

// Mode selects which sources a lookup consults
type Mode int

const (
	ModeAll Mode = iota
	ModeDefinition
	ModeThesaurus
	ModePronounce
	ModeExample
	ModeFrench
	ModeGerman
)

func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeDefinition:
		return "definition"
	case ModeThesaurus:
		return "thesaurus"
	case ModePronounce:
		return "pronounce"
	case ModeExample:
		return "example"
	case ModeFrench:
		return "french"
	case ModeGerman:
		return "german"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Source names one entry of the combined report
type Source string

const (
	SourceDefinition Source = "definition"
	SourceThesaurus  Source = "thesaurus"
	SourceFrench     Source = "french"
	SourceGerman     Source = "german"
)

// DefaultSources is the combined report used when no mode flag is given.
var DefaultSources = []Source{SourceDefinition, SourceThesaurus, SourceFrench, SourceGerman}

// ParseSources validates source names read from configuration.
func ParseSources(names []string) ([]Source, error) {
	sources := make([]Source, 0, len(names))
	for _, name := range names {
		src := Source(strings.ToLower(strings.TrimSpace(name)))
		switch src {
		case SourceDefinition, SourceThesaurus, SourceFrench, SourceGerman:
			sources = append(sources, src)
		default:
			return nil, fmt.Errorf("unknown lookup source: %q", name)
		}
	}
	return sources, nil
}
