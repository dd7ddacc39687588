package layoutlint

import (
	"fmt"
	"regexp"
	"strings"
)

// numericUnitRE locates the numeric-plus-unit span inside a matched
// declaration fragment, for tight range reporting.
var numericUnitRE = regexp.MustCompile(`\d+(?:\.\d+)?\s*(?:px|vw|vh|%|rem|em)`)

// genericPxRE is the fallback declaration pattern when the issue carries no
// property name.
var genericPxRE = regexp.MustCompile(`(?i):\s*[^;]*?\d+(?:\.\d+)?\s*px`)

// MapToLines attaches 1-based source positions to issues by searching the
// raw stylesheet text. Parsing normalizes whitespace away, so positions are
// recovered heuristically:
//
//  1. The selector's line is the first line containing the selector text
//     verbatim. When a selector appears both in base CSS and inside a media
//     block, every issue for it maps to the first occurrence; issues raised
//     from the media copy will point at the base rule. Accepted as a
//     limitation of text search over a position-free parse.
//  2. The declaration is searched from that line to the rule's closing
//     brace (or a fixed window when none is found).
//  3. The range narrows to the numeric-unit span when one exists, then the
//     matched fragment, then the whole line.
//
// Issues whose selector is not found are returned unchanged with Line 0.
func MapToLines(issues []Issue, source string) []Issue {
	lines := strings.Split(source, "\n")

	out := make([]Issue, len(issues))
	for i, issue := range issues {
		out[i] = locateIssue(issue, lines)
	}
	return out
}

func locateIssue(issue Issue, lines []string) Issue {
	start := -1
	for i, line := range lines {
		if strings.Contains(line, issue.Selector) {
			start = i
			break
		}
	}
	if start < 0 {
		return issue
	}

	end := start + 10
	for i := start; i < len(lines); i++ {
		if strings.Contains(lines[i], "}") {
			end = i
			break
		}
	}
	if end >= len(lines) {
		end = len(lines) - 1
	}

	declRE := genericPxRE
	if issue.Property != "" {
		declRE = regexp.MustCompile(
			`(?i)` + regexp.QuoteMeta(issue.Property) + `\s*:\s*[^;]*?\d+(?:\.\d+)?\s*px`)
	}

	for i := start; i <= end; i++ {
		loc := declRE.FindStringIndex(lines[i])
		if loc == nil {
			continue
		}
		issue.Line = i + 1
		issue.Range = rangeFor(lines[i], i+1, loc)
		return issue
	}

	// Declaration not found; point at the selector line.
	issue.Line = start + 1
	issue.Range = &Range{
		StartLine: start + 1,
		StartCol:  1,
		EndLine:   start + 1,
		EndCol:    len(lines[start]) + 1,
	}
	return issue
}

// rangeFor narrows a matched declaration fragment to its numeric-unit span
// when one exists.
func rangeFor(line string, lineNo int, fragment []int) *Range {
	start, end := fragment[0], fragment[1]
	if loc := numericUnitRE.FindStringIndex(line[start:end]); loc != nil {
		start, end = start+loc[0], start+loc[1]
	}
	return &Range{
		StartLine: lineNo,
		StartCol:  start + 1,
		EndLine:   lineNo,
		EndCol:    end + 1,
	}
}

// SourceLineAt returns the trimmed source line for a 1-based line number,
// for reporter context output.
func SourceLineAt(source string, line int) string {
	if line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[line-1], " \t\r")
}

// Position renders an issue's location as file:line:col for reporters.
func Position(file string, issue Issue) string {
	col := 1
	if issue.Range != nil {
		col = issue.Range.StartCol
	}
	line := issue.Line
	if line < 1 {
		line = 1
	}
	return fmt.Sprintf("%s:%d:%d", file, line, col)
}
