package layoutlint

import "sort"

// detectMediaConflicts flags selectors whose declarations for the same
// property differ across rule blocks (base stylesheet and media queries
// combined). One issue is emitted per selector, on the first conflicting
// property in sorted order. The ignore list does not apply: the conflict is
// between rule blocks, not inside any one selector the user chose to skip.
func detectMediaConflicts(doc *ParsedDocument, _ string, _ Config) []Issue {
	type propValues map[string]map[string]struct{}

	bySelector := make(map[string]propValues)
	var order []string

	for _, rule := range doc.Rules {
		pv, ok := bySelector[rule.Selector]
		if !ok {
			pv = make(propValues)
			bySelector[rule.Selector] = pv
			order = append(order, rule.Selector)
		}
		for prop, value := range rule.Declarations {
			if pv[prop] == nil {
				pv[prop] = make(map[string]struct{})
			}
			pv[prop][value] = struct{}{}
		}
	}

	var issues []Issue
	for _, selector := range order {
		pv := bySelector[selector]

		props := make([]string, 0, len(pv))
		for prop := range pv {
			props = append(props, prop)
		}
		sort.Strings(props)

		for _, prop := range props {
			if len(pv[prop]) < 2 {
				continue
			}
			issues = append(issues, newIssue(KindMediaConflict, SeverityLow,
				selector, prop, ""))
			break
		}
	}

	return issues
}

// detectBreakpointFixedWidth flags fixed widths inside media queries that
// exceed the breakpoint the query targets. A 500px-wide box inside a
// max-width 480px query is guaranteed to overflow every viewport the query
// matches.
func detectBreakpointFixedWidth(doc *ParsedDocument, _ string, cfg Config) []Issue {
	var issues []Issue

	for _, rule := range doc.Rules {
		if !rule.InMedia() {
			continue
		}
		if selectorIgnored(cfg, rule.Selector) {
			continue
		}

		breakpoint, ok := pxValue(rule.AtRule.Condition)
		if !ok {
			continue
		}
		width, ok := pxValue(rule.Declarations["width"])
		if !ok {
			continue
		}
		if width > breakpoint {
			issues = append(issues, newIssue(KindBreakpointOverflow, SeverityCritical,
				rule.Selector, "width", rule.Declarations["width"]))
		}
	}

	return issues
}

// detectMediaWidthInstability flags selectors whose base-stylesheet pixel
// width is overridden to a different pixel width inside a media query.
// Jumping between fixed widths at breakpoints produces layouts that are
// wrong at every viewport between them. One issue per selector, against the
// first base width seen.
func detectMediaWidthInstability(doc *ParsedDocument, _ string, cfg Config) []Issue {
	type baseWidth struct {
		value float64
		raw   string
	}

	baseWidths := make(map[string]baseWidth)
	var order []string

	for _, rule := range doc.Rules {
		if rule.InMedia() {
			continue
		}
		if _, seen := baseWidths[rule.Selector]; seen {
			continue
		}
		if n, ok := pxValue(rule.Declarations["width"]); ok {
			baseWidths[rule.Selector] = baseWidth{value: n, raw: rule.Declarations["width"]}
			order = append(order, rule.Selector)
		}
	}

	unstable := make(map[string]bool)
	for _, rule := range doc.Rules {
		if !rule.InMedia() {
			continue
		}
		base, ok := baseWidths[rule.Selector]
		if !ok {
			continue
		}
		if n, ok := pxValue(rule.Declarations["width"]); ok && n != base.value {
			unstable[rule.Selector] = true
		}
	}

	var issues []Issue
	for _, selector := range order {
		if !unstable[selector] || selectorIgnored(cfg, selector) {
			continue
		}
		issues = append(issues, newIssue(KindUnstableMediaWidth, SeverityMedium,
			selector, "width", baseWidths[selector].raw))
	}

	return issues
}
