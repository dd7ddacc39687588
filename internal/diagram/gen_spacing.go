package diagram

// fixedSpacingGen shows large fixed spacing squeezing the content column on
// a narrow viewport versus spacing that scales down with it.
type fixedSpacingGen struct{}

func (g *fixedSpacingGen) Type() string { return TypeFixedSpacing }

func (g *fixedSpacingGen) Render(issue Issue) string {
	pad := scaled(pxOf(issue.Value), 3, 8)
	content := leftColWidth - 2*pad - 2
	if content < 2 {
		content = 2
	}

	before := []string{
		"narrow " + viewportRuler(14),
		bar(blockMedium, pad, "") + bar(blockLight, content, "") + bar(blockMedium, pad, ""),
		"spacing stays fixed,",
		"content is squeezed",
	}
	after := []string{
		"narrow " + viewportRuler(14),
		bar(blockMedium, 2, "") + bar(blockLight, 12, "") + bar(blockMedium, 2, ""),
		"relative spacing",
		"shrinks too " + glyphFixed,
	}
	return render(issue, comparison(issue, before, after))
}
