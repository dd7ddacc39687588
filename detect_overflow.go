package layoutlint

import "strings"

// detectOverflowHorizontal flags per-rule combinations that make horizontal
// overflow likely: visible overflow on a fixed-width box, stacked fixed
// horizontal spacing on a fixed-width box, and nowrap text in a fixed-width
// box.
func detectOverflowHorizontal(doc *ParsedDocument, _ string, cfg Config) []Issue {
	var issues []Issue

	horizontalSpacing := []string{"margin-left", "margin-right", "padding-left", "padding-right"}

	for _, rule := range doc.Rules {
		if selectorIgnored(cfg, rule.Selector) {
			continue
		}

		fixedWidth := hasPx(rule.Declarations["width"])
		fixedMinWidth := hasPx(rule.Declarations["min-width"])
		widthValue := rule.Declarations["width"]
		if !fixedWidth && fixedMinWidth {
			widthValue = rule.Declarations["min-width"]
		}

		if strings.EqualFold(strings.TrimSpace(rule.Declarations["overflow-x"]), "visible") &&
			(fixedWidth || fixedMinWidth) {
			issues = append(issues, newIssue(KindVisibleOverflow, SeverityMedium,
				rule.Selector, "overflow-x", widthValue))
		}

		if fixedWidth {
			fixedSides := 0
			for _, prop := range horizontalSpacing {
				if hasPx(rule.Declarations[prop]) {
					fixedSides++
				}
			}
			if fixedSides >= 2 {
				issues = append(issues, newIssue(KindSpacingWithWidth, SeverityMedium,
					rule.Selector, "width", rule.Declarations["width"]))
			}
		}

		if strings.EqualFold(strings.TrimSpace(rule.Declarations["white-space"]), "nowrap") &&
			(fixedWidth || fixedMinWidth) {
			issues = append(issues, newIssue(KindNowrapWithWidth, SeverityCritical,
				rule.Selector, "white-space", widthValue))
		}
	}

	return issues
}

// detectOverflowMaskBody flags overflow-x: hidden on the body selector
// specifically. Hiding overflow on body is the classic way to mask a layout
// bug instead of fixing it; on any other selector it is a legitimate tool.
func detectOverflowMaskBody(doc *ParsedDocument, _ string, cfg Config) []Issue {
	var issues []Issue

	for _, rule := range doc.Rules {
		if selectorIgnored(cfg, rule.Selector) {
			continue
		}
		if strings.ToLower(strings.TrimSpace(rule.Selector)) != "body" {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(rule.Declarations["overflow-x"]), "hidden") {
			issues = append(issues, newIssue(KindHiddenBodyOverflow, SeverityMedium,
				rule.Selector, "overflow-x", rule.Declarations["overflow-x"]))
		}
	}

	return issues
}

// detectVwWidthRisk flags width values containing the literal 100vw token.
func detectVwWidthRisk(doc *ParsedDocument, _ string, cfg Config) []Issue {
	var issues []Issue

	for _, rule := range doc.Rules {
		if selectorIgnored(cfg, rule.Selector) {
			continue
		}
		if strings.Contains(rule.Declarations["width"], "100vw") {
			issues = append(issues, newIssue(KindFullViewportWidth, SeverityMedium,
				rule.Selector, "width", rule.Declarations["width"]))
		}
	}

	return issues
}
