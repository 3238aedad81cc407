package cli

import "codeberg.org/snonux/define/internal/lookup"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile string
	Verbose bool
	Player  string

	// Mode flags, at most one is honoured
	Definition bool
	Thesaurus  bool
	Pronounce  bool
	Example    bool
	French     bool
	German     bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{}
}

// Mode returns the lookup mode selected by the flags. When several mode
// flags are given the first one in the order definition, thesaurus,
// pronounce, example, french, german wins.
func (f *Flags) Mode() lookup.Mode {
	switch {
	case f.Definition:
		return lookup.ModeDefinition
	case f.Thesaurus:
		return lookup.ModeThesaurus
	case f.Pronounce:
		return lookup.ModePronounce
	case f.Example:
		return lookup.ModeExample
	case f.French:
		return lookup.ModeFrench
	case f.German:
		return lookup.ModeGerman
	default:
		return lookup.ModeAll
	}
}
