package diagram

// horizontalOverflowGen illustrates content spilling past a fixed-width box
// versus scrolling or wrapping inside a fluid one.
type horizontalOverflowGen struct{}

func (g *horizontalOverflowGen) Type() string { return TypeHorizontalOverflow }

func (g *horizontalOverflowGen) Render(issue Issue) string {
	w := scaled(pxOf(issue.Value), 8, 18)

	before := append(box("content", w),
		bar(blockMedium, w+4, arrowRight),
		"spills past the edge")
	after := append(box("content", 14),
		bar(blockLight, 14, ""),
		"contained "+glyphFixed)
	return render(issue, comparison(issue, before, after))
}

// overflowMaskGen contrasts clipping overflow at body against fixing the
// element that overflows.
type overflowMaskGen struct{}

func (g *overflowMaskGen) Type() string { return TypeOverflowMask }

func (g *overflowMaskGen) Render(issue Issue) string {
	before := []string{
		"body " + viewportRuler(12),
		bar(blockFull, 12, glyphProblem),
		"overflow clipped,",
		"content unreachable",
	}
	after := []string{
		"body " + viewportRuler(12),
		bar(blockLight, 12, ""),
		"element resized,",
		"nothing to hide " + glyphFixed,
	}
	return render(issue, comparison(issue, before, after))
}

// viewportWidthGen shows 100vw colliding with the scrollbar gutter.
type viewportWidthGen struct{}

func (g *viewportWidthGen) Type() string { return TypeViewportWidth }

func (g *viewportWidthGen) Render(issue Issue) string {
	before := []string{
		"100vw:",
		bar(blockFull, 20, arrowRight),
		"scrollbar " + arrowUp,
		"sideways scroll appears",
	}
	after := []string{
		"100%:",
		bar(blockLight, 18, ""),
		"scrollbar " + arrowUp,
		"exact fit " + glyphFixed,
	}
	return render(issue, comparison(issue, before, after))
}
