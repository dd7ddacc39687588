package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFit_PadsToWidth(t *testing.T) {
	assert.Equal(t, "abc   ", fit("abc", 6))
	assert.Equal(t, "", fit("anything", 0))
}

func TestFit_TruncatesWithEllipsis(t *testing.T) {
	got := fit("abcdefghij", 6)
	assert.Equal(t, 6, cellWidth(got))
	assert.Equal(t, "abcde…", got)
}

func TestFit_DoubleWidthRunes(t *testing.T) {
	// CJK selectors measure two cells per rune; the padded result must
	// still land on the exact cell width.
	got := fit("日本語のセレクタ", 10)
	assert.Equal(t, 10, cellWidth(got))

	padded := fit("日本", 8)
	assert.Equal(t, 8, cellWidth(padded))
}

func TestRepeatCells(t *testing.T) {
	assert.Equal(t, "───", repeatCells(lineH, 3))
	assert.Equal(t, "", repeatCells(lineH, 0))
	assert.Equal(t, "", repeatCells(lineH, -4))
}

func TestCellWidth(t *testing.T) {
	assert.Equal(t, 5, cellWidth("hello"))
	assert.Equal(t, 4, cellWidth("日本"))
	assert.Equal(t, 1, cellWidth(blockFull))
}
