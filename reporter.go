package layoutlint

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ReportConfig controls reporter behavior.
type ReportConfig struct {
	UseColors        bool
	PrintIssuedLines bool
	PrintLinterName  bool
	Quiet            bool
}

// Reporter handles formatting and outputting analysis results.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration.
func NewReporter(w io.Writer, config ReportConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors determines if colors should be enabled.
func shouldUseColors(config ReportConfig) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues in golangci-lint format, sorted by file, line,
// and column.
func (r *Reporter) PrintIssues(issues []FileIssue) {
	sortFileIssues(issues)
	for _, fi := range issues {
		r.printIssue(fi)
	}
}

// printIssue formats a single issue as file:line:col: message (detector).
func (r *Reporter) printIssue(fi FileIssue) {
	location := Position(fi.File, fi.Issue) + ":"

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = " (layoutlint)"
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		IssueMessage(fi.Issue),
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	// Print source line with caret indicator
	if r.printLines && fi.SourceLine != "" {
		fmt.Fprintf(r.w, "\t%s\n", fi.SourceLine)

		col := 1
		if fi.Issue.Range != nil {
			col = fi.Issue.Range.StartCol
		}
		caret := r.buildCaretIndicator(fi.SourceLine, col)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are preserved so the caret lines up in any terminal.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	prefix := sourceLine[:prefixLen]

	var padding strings.Builder
	for _, ch := range prefix {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary.
func (r *Reporter) PrintSummary(result Result) {
	totalIssues := len(result.Issues)
	truncated := result.TruncatedCount

	counts := result.CountBySeverity()
	critical := counts[SeverityCritical]
	medium := counts[SeverityMedium]
	low := counts[SeverityLow]

	fmt.Fprintln(r.w, "")

	summary := pluralizeCount(totalIssues, "issue", "issues")
	var parts []string
	if critical > 0 {
		parts = append(parts, fmt.Sprintf("%d critical", critical))
	}
	if medium > 0 {
		parts = append(parts, fmt.Sprintf("%d medium", medium))
	}
	if low > 0 {
		parts = append(parts, fmt.Sprintf("%d low", low))
	}
	if truncated > 0 {
		parts = append(parts, fmt.Sprintf("%s truncated",
			pluralizeCount(truncated, "issue", "issues")))
	}

	if len(parts) > 0 {
		fmt.Fprintf(r.w, "%s (%s):\n", summary, strings.Join(parts, ", "))
	} else {
		fmt.Fprintf(r.w, "%s:\n", summary)
	}

	// Group by issue kind
	kindCounts := make(map[string]int)
	var kindOrder []string
	for _, fi := range result.Issues {
		if kindCounts[fi.Issue.Kind] == 0 {
			kindOrder = append(kindOrder, fi.Issue.Kind)
		}
		kindCounts[fi.Issue.Kind]++
	}
	for _, kind := range kindOrder {
		fmt.Fprintf(r.w, "* %s: %d\n", kind, kindCounts[kind])
	}

	if totalIssues > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGray,
			"Hint: Run with --output-format full to see statistics and diagrams", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}
