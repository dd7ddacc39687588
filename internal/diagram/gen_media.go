package diagram

// mediaConflictGen shows the same selector resolving to different values on
// either side of a breakpoint versus one consolidated declaration.
type mediaConflictGen struct{}

func (g *mediaConflictGen) Type() string { return TypeMediaConflict }

func (g *mediaConflictGen) Render(issue Issue) string {
	before := []string{
		"base:",
		bar(blockFull, 14, ""),
		"@media:",
		bar(blockMedium, 9, ""),
		"value flips at boundary",
	}
	after := []string{
		"all viewports:",
		bar(blockLight, 12, ""),
		"",
		bar(blockLight, 12, ""),
		"one declaration " + glyphFixed,
	}
	return render(issue, comparison(issue, before, after))
}

// breakpointOverflowGen draws a fixed width poking past the breakpoint the
// media query targets.
type breakpointOverflowGen struct{}

func (g *breakpointOverflowGen) Type() string { return TypeBreakpointOverflow }

func (g *breakpointOverflowGen) Render(issue Issue) string {
	w := scaled(pxOf(issue.Value), 14, 22)

	before := []string{
		"breakpoint " + viewportRuler(12),
		bar(blockFull, w, arrowRight),
		"wider than the query",
		"it lives in",
	}
	after := []string{
		"breakpoint " + viewportRuler(12),
		bar(blockLight, 12, ""),
		"width: 100% inside",
		"the breakpoint " + glyphFixed,
	}
	return render(issue, comparison(issue, before, after))
}

// mediaInstabilityGen shows a width snapping between fixed values at
// breakpoints versus scaling fluidly between them.
type mediaInstabilityGen struct{}

func (g *mediaInstabilityGen) Type() string { return TypeMediaInstability }

func (g *mediaInstabilityGen) Render(issue Issue) string {
	before := []string{
		"1200px " + bar(blockFull, 18, ""),
		" 768px " + bar(blockFull, 10, ""),
		" 480px " + bar(blockFull, 14, ""),
		"snaps at each boundary",
	}
	after := []string{
		"1200px " + bar(blockLight, 17, ""),
		" 768px " + bar(blockLight, 12, ""),
		" 480px " + bar(blockLight, 8, ""),
		"scales smoothly " + glyphFixed,
	}
	return render(issue, comparison(issue, before, after))
}
