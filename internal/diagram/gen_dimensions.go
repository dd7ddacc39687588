package diagram

import (
	"regexp"
	"strconv"
)

var pxRE = regexp.MustCompile(`(\d+(?:\.\d+)?)px`)

// pxOf extracts the first pixel number from a declaration value, defaulting
// to a mid-size bar when the value carries no pixel token.
func pxOf(value string) float64 {
	if m := pxRE.FindStringSubmatch(value); m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			return n
		}
	}
	return 400
}

// viewportRuler draws a labeled viewport extent for a panel of the given
// inner width.
func viewportRuler(width int) string {
	rule := teeLeft + repeatCells(lineH, width-2) + teeRight
	return rule
}

// fixedDimensionsGen illustrates a box frozen in both axes against the one
// that tracks the viewport.
type fixedDimensionsGen struct{}

func (g *fixedDimensionsGen) Type() string { return TypeFixedDimensions }

func (g *fixedDimensionsGen) Render(issue Issue) string {
	w := scaled(pxOf(issue.Value), 8, 22)

	before := []string{
		"viewport " + viewportRuler(14),
		bar(blockFull, w, arrowRight),
		bar(blockFull, w, arrowRight),
		"fixed box overflows",
	}
	after := []string{
		"viewport " + viewportRuler(13),
		bar(blockLight, 13, ""),
		bar(blockLight, 13, ""),
		"fluid box fits " + glyphFixed,
	}
	return render(issue, comparison(issue, before, after))
}

// mixedBoxSizingGen shows two rules with the same declared width rendering
// at different final sizes, then uniformly under border-box.
type mixedBoxSizingGen struct{}

func (g *mixedBoxSizingGen) Type() string { return TypeMixedBoxSizing }

func (g *mixedBoxSizingGen) Render(issue Issue) string {
	before := []string{
		"content-box:",
		bar(blockFull, 16, ""),
		"border-box:",
		bar(blockFull, 12, ""),
		"same width, two sizes",
	}
	after := []string{
		"border-box:",
		bar(blockLight, 12, ""),
		"border-box:",
		bar(blockLight, 12, ""),
		"uniform sizing " + glyphFixed,
	}
	return render(issue, comparison(issue, before, after))
}
