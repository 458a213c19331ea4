package textutil

import "strings"

// IsQueryRune reports whether a typed rune may enter the query buffer.
// The allowed set keeps queries directly usable as directory name parts.
func IsQueryRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_' || r == '.' || r == ' ':
		return true
	}
	return false
}

// SanitizeQuery drops every rune outside the allowed query set.
func SanitizeQuery(q string) string {
	var b strings.Builder
	b.Grow(len(q))
	for _, r := range q {
		if IsQueryRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeForMatch sanitizes a query and collapses whitespace runs into a
// single dash, producing the form used for exact-name comparison and for
// new directory names.
func NormalizeForMatch(q string) string {
	sanitized := SanitizeQuery(q)
	var b strings.Builder
	b.Grow(len(sanitized))
	lastDash := false
	for _, r := range sanitized {
		if r == ' ' {
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
			continue
		}
		b.WriteRune(r)
		lastDash = false
	}
	return b.String()
}
