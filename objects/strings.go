package objects

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeUnicode puts text into NFC so that canonically-equivalent
// strings compare equal byte-for-byte.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// NormalizeWhitespace trims leading and trailing whitespace and collapses
// every internal whitespace run to a single space.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
