package coreterm

import "github.com/unilibs/uniwidth"

// runeWidth returns the column width of r: 0 for combining marks, 1 for
// narrow, 2 for wide (east-asian wide/fullwidth) runes.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

func isWideRune(r rune) bool {
	return runeWidth(r) == 2
}

func isCombining(r rune) bool {
	return runeWidth(r) == 0
}

// StringWidth returns the total column width of s.
func StringWidth(s string) int {
	width := 0
	for _, r := range s {
		width += runeWidth(r)
	}
	return width
}
