package models

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeText trims surrounding whitespace, converts CRLF and CR line
// endings to LF and returns the NFC form of s.
// Hangul typed as separate jamo is composed into syllables.
func NormalizeText(s string) string {
	s = newlineReplacer.Replace(s)
	return norm.NFC.String(strings.TrimSpace(s))
}
