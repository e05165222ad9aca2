package utils

import (
	"strings"
	"unicode"
)

const groupSize = 4

// Normalize removes every whitespace rune from s.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// FormatCardNumber groups the normalized number in blocks of four separated by a single space.
func FormatCardNumber(number string) string {
	clean := []rune(Normalize(number))

	var b strings.Builder
	for i, r := range clean {
		if i > 0 && i%groupSize == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MaskCardNumber keeps the first and last four characters and replaces the rest with '*'.
// Inputs shorter than eight characters get no stars and the head and tail are clamped
// to the available length, so the result may overlap.
func MaskCardNumber(number string) string {
	clean := []rune(Normalize(number))
	n := len(clean)

	head := clean[:min(groupSize, n)]
	tail := clean[n-min(groupSize, n):]
	stars := max(n-2*groupSize, 0)

	return string(head) + " " + strings.Repeat("*", stars) + " " + string(tail)
}
