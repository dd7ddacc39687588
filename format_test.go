package layoutlint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatIssue_PlainText(t *testing.T) {
	issue := newIssue(KindFixedWidth, SeverityMedium, ".card", "width", "500px")

	out := FormatIssue(issue, false)

	assert.Contains(t, out, "◆ Fixed width")
	assert.Contains(t, out, ".card { width: 500px }")
	assert.Contains(t, out, issue.Explanation)
	assert.Contains(t, out, "Viewport impact: "+issue.ViewportImpact)
	assert.Contains(t, out, "Suggestion: max-width: 100%")
}

func TestFormatIssue_SeverityGlyphs(t *testing.T) {
	tests := []struct {
		severity Severity
		glyph    string
	}{
		{SeverityCritical, "▲"},
		{SeverityMedium, "◆"},
		{SeverityLow, "●"},
	}

	for _, tt := range tests {
		issue := newIssue(KindFixedWidth, tt.severity, ".a", "width", "500px")
		out := FormatIssue(issue, false)
		assert.True(t, strings.HasPrefix(out, tt.glyph), string(tt.severity))
	}
}

func TestFormatIssue_NoSuggestionOmitsSection(t *testing.T) {
	issue := Issue{
		Kind:        "Custom",
		Severity:    SeverityLow,
		Selector:    ".a",
		Explanation: "something",
	}

	out := FormatIssue(issue, false)
	assert.NotContains(t, out, "Suggestion:")
}

func TestHighlightUnits_DisabledReturnsInput(t *testing.T) {
	s := "width: 500px and 2rem and 100vw"
	assert.Equal(t, s, highlightUnits(s, false))
}

func TestIssueMessage(t *testing.T) {
	issue := newIssue(KindFixedWidth, SeverityMedium, ".card", "width", "500px")
	msg := IssueMessage(issue)
	assert.Equal(t, `Fixed width in ".card" (width: 500px)`, msg)

	bare := Issue{Kind: "Mixed box-sizing", Selector: "*"}
	assert.Equal(t, `Mixed box-sizing in "*"`, IssueMessage(bare))
}

func TestIssueTexts_CompleteForAllKinds(t *testing.T) {
	for kind, text := range issueTexts {
		require.NotEmpty(t, text.explanation, kind)
		require.NotEmpty(t, text.impact, kind)
		require.NotEmpty(t, text.suggestion, kind)
	}
	assert.Len(t, issueTexts, 20)
}
