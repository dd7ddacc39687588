package diagram

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Text measurement goes through go-runewidth so that selectors containing
// CJK text or emoji still produce correctly aligned frames; len() over bytes
// or runes both miscount double-width cells.

// cellWidth returns the terminal cell width of s.
func cellWidth(s string) int {
	return runewidth.StringWidth(s)
}

// fit truncates s to at most width cells, appending the ellipsis when
// anything was cut, then pads with spaces to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if cellWidth(s) > width {
		s = runewidth.Truncate(s, width-1, "") + ellipsis
	}
	return runewidth.FillRight(s, width)
}

// repeatCells returns s repeated to fill exactly n cells, clamped at zero.
func repeatCells(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

// scaled maps a pixel value into [min, max] bar cells against a 1000px
// reference, so 240px and 960px produce visibly different bars while huge
// values stay inside the frame.
func scaled(px float64, min, max int) int {
	if px <= 0 {
		return min
	}
	n := int(px / 1000 * float64(max))
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
