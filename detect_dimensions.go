package layoutlint

import "strings"

// detectFixedDimensions flags fixed pixel width and height declarations,
// the higher-severity combination of both on one rule, and fixed minimum
// sizes. Width and height findings are threshold-gated; minimum sizes are
// reported regardless of magnitude because a minimum of any size defeats
// fluid layouts below it.
func detectFixedDimensions(doc *ParsedDocument, _ string, cfg Config) []Issue {
	var issues []Issue

	for _, rule := range doc.Rules {
		if selectorIgnored(cfg, rule.Selector) {
			continue
		}

		width, widthOK := pxValue(rule.Declarations["width"])
		height, heightOK := pxValue(rule.Declarations["height"])

		if widthOK && cfg.ShouldReport(ThresholdWidth, width) {
			issues = append(issues, newIssue(KindFixedWidth, SeverityMedium,
				rule.Selector, "width", rule.Declarations["width"]))
		}
		if heightOK && cfg.ShouldReport(ThresholdHeight, height) {
			issues = append(issues, newIssue(KindFixedHeight, SeverityMedium,
				rule.Selector, "height", rule.Declarations["height"]))
		}

		// Both axes fixed is a distinct, worse problem than either alone.
		if widthOK && heightOK &&
			(cfg.ShouldReport(ThresholdWidth, width) || cfg.ShouldReport(ThresholdHeight, height)) {
			issues = append(issues, newIssue(KindFixedBoxDimensions, SeverityCritical,
				rule.Selector, "width", rule.Declarations["width"]))
		}

		for _, prop := range []string{"min-width", "min-height"} {
			if hasPx(rule.Declarations[prop]) {
				issues = append(issues, newIssue(KindFixedMinimumSize, SeverityMedium,
					rule.Selector, prop, rule.Declarations[prop]))
			}
		}
	}

	return issues
}

// detectBoxModel emits a single document-level issue when the stylesheet
// mixes border-box and content-box sizing. The ignore list does not apply:
// the finding is about the document, not any one selector.
func detectBoxModel(doc *ParsedDocument, _ string, _ Config) []Issue {
	var borderBox, contentBox int

	for _, rule := range doc.Rules {
		switch strings.ToLower(strings.TrimSpace(rule.Declarations["box-sizing"])) {
		case "border-box":
			borderBox++
		case "content-box":
			contentBox++
		}
	}

	if borderBox == 0 || contentBox == 0 {
		return nil
	}
	return []Issue{newIssue(KindMixedBoxSizing, SeverityMedium, "*", "box-sizing", "")}
}
