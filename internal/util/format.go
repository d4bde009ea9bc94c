package util

import "unicode/utf8"

// TruncateContent shortens s to at most maxLength bytes, marking the cut with
// "...". The cut never splits a UTF-8 sequence.
func TruncateContent(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}

	cut := max(maxLength, 0)
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
