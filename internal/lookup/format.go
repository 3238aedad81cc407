package lookup

import (
	"fmt"
	"strings"
)

// Format renders a result as the text printed to the terminal. Sections
// appear in a fixed order (definition, example, synonyms, translations)
// separated by a blank line; absent fields are left out.
func Format(mode Mode, r *Result) string {
	if r == nil {
		return ""
	}

	if mode == ModeExample {
		if r.Example == nil {
			return ""
		}
		return *r.Example
	}

	var sections []string

	if r.Headword != nil && r.Definition != nil {
		if r.PhoneticSpelling != nil && *r.PhoneticSpelling != "" {
			sections = append(sections, fmt.Sprintf("%s [%s]: %s", *r.Headword, *r.PhoneticSpelling, *r.Definition))
		} else {
			sections = append(sections, fmt.Sprintf("%s: %s", *r.Headword, *r.Definition))
		}
	}

	if r.Example != nil {
		sections = append(sections, *r.Example)
	}

	if r.Synonyms != nil {
		sections = append(sections, strings.TrimSpace("synonyms: "+strings.Join(r.Synonyms, ", ")))
	}

	if len(r.Translations) > 0 {
		lines := make([]string, 0, len(r.Translations))
		for _, t := range r.Translations {
			lines = append(lines, fmt.Sprintf("[%s] %s", t.Language.Label, t.Text))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return strings.Join(sections, "\n\n")
}
