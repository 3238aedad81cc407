package lookup

import "strings"

// Language identifies a translation target
type Language struct {
	Code  string // Code sent to the translation service, e.g. "fra"
	Label string // Short label used in the report, e.g. "fr"
	Name  string // English name of the language
}

var (
	French = Language{Code: "fra", Label: "fr", Name: "French"}
	German = Language{Code: "deu", Label: "de", Name: "German"}
)

// Translation is a single translated phrase
type Translation struct {
	Language Language
	Text     string
}

// Result holds everything the sources found for a phrase. Nil pointers and
// a nil Synonyms slice mean the source did not provide the field; a
// non-nil empty Synonyms slice means the thesaurus had no entries.
type Result struct {
	Headword         *string
	Definition       *string
	PhoneticSpelling *string
	Example          *string
	AudioURL         *string
	Synonyms         []string
	Translations     []Translation
}

// Merge copies every field present in other into r. Translations are
// appended in order.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	if other.Headword != nil {
		r.Headword = other.Headword
	}
	if other.Definition != nil {
		r.Definition = other.Definition
	}
	if other.PhoneticSpelling != nil {
		r.PhoneticSpelling = other.PhoneticSpelling
	}
	if other.Example != nil {
		r.Example = other.Example
	}
	if other.AudioURL != nil {
		r.AudioURL = other.AudioURL
	}
	if other.Synonyms != nil {
		r.Synonyms = other.Synonyms
	}
	r.Translations = append(r.Translations, other.Translations...)
}

// Ptr returns a pointer to s.
func Ptr(s string) *string { return &s }

// JoinPhrase builds a phrase from command line tokens.
func JoinPhrase(tokens []string) string {
	return strings.TrimSpace(strings.Join(tokens, " "))
}
