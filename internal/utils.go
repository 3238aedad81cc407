package internal

import (
	"strings"
	"unicode"
)

// SanitizeFilename creates a safe file name fragment from a string.
// Letters, digits, '-' and '_' are kept, every other rune becomes '_'.
func SanitizeFilename(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
