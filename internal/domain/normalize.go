package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsStorableText reports whether PostgreSQL can keep s in a TEXT or JSONB
// column: it must be valid UTF-8 and free of NUL characters.
func IsStorableText(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

// NormalizeEmail prepares an email for storage and lookup:
// trims surrounding whitespace and lowercases it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Slugify turns free text into a filename-safe token:
//   - letters and digits are kept (lowercased)
//   - every other run of characters becomes a single underscore
//   - leading/trailing underscores are dropped
//
// Returns "form" when nothing usable remains.
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pendingSep := false
	for _, r := range strings.TrimSpace(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		pendingSep = true
	}
	if b.Len() == 0 {
		return "form"
	}
	return b.String()
}
