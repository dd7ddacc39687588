package diagram

// flexFragilityGen shows rigid flex items overflowing a nowrap row versus
// wrapping onto a second row.
type flexFragilityGen struct{}

func (g *flexFragilityGen) Type() string { return TypeFlexFragility }

func (g *flexFragilityGen) Render(issue Issue) string {
	before := []string{
		"row " + viewportRuler(14),
		bar(blockFull, 6, "") + " " + bar(blockFull, 6, "") + " " + bar(blockFull, 6, arrowRight),
		"items keep their basis",
		"and overflow",
	}
	after := []string{
		"row " + viewportRuler(14),
		bar(blockLight, 6, "") + " " + bar(blockLight, 6, ""),
		bar(blockLight, 6, ""),
		"wrapped " + glyphFixed,
	}
	return render(issue, comparison(issue, before, after))
}

// gridRigidityGen contrasts pixel tracks with fr tracks.
type gridRigidityGen struct{}

func (g *gridRigidityGen) Type() string { return TypeGridRigidity }

func (g *gridRigidityGen) Render(issue Issue) string {
	before := []string{
		"px tracks:",
		bar(blockFull, 8, "") + " " + bar(blockFull, 8, "") + " " + arrowRight,
		"fixed sum exceeds",
		"narrow viewports",
	}
	after := []string{
		"fr tracks:",
		bar(blockLight, 8, "") + " " + bar(blockLight, 8, ""),
		"tracks share the",
		"available width " + glyphFixed,
	}
	return render(issue, comparison(issue, before, after))
}

// absoluteContainmentGen shows a pinned element escaping its shrinking
// container versus staying inside with relative offsets.
type absoluteContainmentGen struct{}

func (g *absoluteContainmentGen) Type() string { return TypeAbsoluteContainment }

func (g *absoluteContainmentGen) Render(issue Issue) string {
	before := append(box("container", 14),
		bar(blockFull, 10, arrowRight),
		"pinned child escapes")
	after := append(box("container", 14),
		bar(blockLight, 8, ""),
		"child tracks parent "+glyphFixed)
	return render(issue, comparison(issue, before, after))
}
