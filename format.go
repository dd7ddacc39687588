package layoutlint

import (
	"fmt"
	"regexp"
	"strings"
)

// Severity markers used in formatted text output. They match the markers
// the diagram renderer uses so text and diagrams read as one report.
var severityGlyphs = map[Severity]string{
	SeverityCritical: "▲",
	SeverityMedium:   "◆",
	SeverityLow:      "●",
}

// unitRE matches numeric length tokens for highlighting.
var unitRE = regexp.MustCompile(`\d+(?:\.\d+)?(?:px|rem|em|vw|vh|%)`)

// FormatIssue renders one issue as a short explanatory block: a headline
// with the severity marker, the explanation, the viewport impact, and the
// suggested fix.
func FormatIssue(issue Issue, useColors bool) string {
	var b strings.Builder

	glyph := severityGlyphs[issue.Severity]
	headline := fmt.Sprintf("%s %s", glyph, issue.Kind)
	b.WriteString(RenderStyle(severityStyle(issue.Severity), headline, useColors))
	b.WriteString("\n")

	if issue.Selector != "" {
		location := issue.Selector
		if issue.Property != "" {
			location += " { " + issue.Property
			if issue.Value != "" {
				location += ": " + issue.Value
			}
			location += " }"
		}
		b.WriteString("  " + highlightUnits(location, useColors) + "\n")
	}

	b.WriteString("  " + highlightUnits(issue.Explanation, useColors) + "\n")
	if issue.ViewportImpact != "" {
		b.WriteString("  Viewport impact: " + issue.ViewportImpact + "\n")
	}
	if issue.Suggestion != "" {
		b.WriteString("  Suggestion: " +
			RenderStyle(StyleGreen, issue.Suggestion, useColors) + "\n")
	}

	return b.String()
}

// highlightUnits wraps numeric length tokens in the yellow style so the
// offending values stand out in prose.
func highlightUnits(s string, useColors bool) string {
	if !useColors {
		return s
	}
	return unitRE.ReplaceAllStringFunc(s, func(m string) string {
		return StyleYellow.Render(m)
	})
}

// IssueMessage renders the one-line message used by the compact reporter:
// kind, selector, and the offending declaration.
func IssueMessage(issue Issue) string {
	msg := issue.Kind
	if issue.Selector != "" {
		msg += fmt.Sprintf(" in %q", issue.Selector)
	}
	if issue.Property != "" && issue.Value != "" {
		msg += fmt.Sprintf(" (%s: %s)", issue.Property, issue.Value)
	}
	return msg
}
