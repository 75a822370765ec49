package text

import (
	"strings"
	"unicode/utf8"
)

// LineCount returns the number of LF separated lines in s.
// The empty string has one line.
func LineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

// MaxLineChars returns the rune count of the longest LF separated line of s.
func MaxLineChars(s string) int {
	longest := 0
	for line := range strings.SplitSeq(s, "\n") {
		longest = max(longest, utf8.RuneCountInString(line))
	}
	return longest
}

// EstimateBox returns a layout box large enough to hold s without wrapping.
// The width is a generous upper bound; the real width comes from shaping.
func EstimateBox(s string, m Metrics) (w, h float64) {
	w = m.FontSize * float64(MaxLineChars(s))
	h = m.LineHeight * float64(LineCount(s))
	return w, h
}
