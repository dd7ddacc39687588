package diagram

import (
	"fmt"
	"strings"
)

// Frame geometry. The outer frame is always exactly MaxWidth cells wide:
// two border cells, two padding cells, and an interior of 56. Comparison
// diagrams split the interior into a 27-cell left column and a 26-cell
// right column around a vertical rule.
const (
	interiorWidth = MaxWidth - 4
	leftColWidth  = 27
	rightColWidth = 26
)

func topBorder() string {
	return cornerTL + repeatCells(lineH, MaxWidth-2) + cornerTR
}

func bottomBorder() string {
	return cornerBL + repeatCells(lineH, MaxWidth-2) + cornerBR
}

func divider() string {
	return teeLeft + repeatCells(lineH, MaxWidth-2) + teeRight
}

// contentRow wraps one interior line in the frame borders, truncating and
// padding to the fixed interior width.
func contentRow(s string) string {
	return lineV + " " + fit(s, interiorWidth) + " " + lineV
}

// splitRow joins a left and right column cell into one interior line.
func splitRow(left, right string) string {
	return fit(left, leftColWidth) + " " + lineV + " " + fit(right, rightColWidth)
}

// render assembles the standard diagram: framed title, divider, body rows,
// clamped to the height bound. The title row carries the issue type, its
// severity marker, and the source line the issue was mapped to.
func render(issue Issue, body []string) string {
	title := fmt.Sprintf("%s %s  L%d",
		strings.ToUpper(issue.Type), severityGlyph(issue.Severity), issue.Line)

	rows := []string{topBorder(), contentRow(title), divider()}
	for _, line := range body {
		rows = append(rows, contentRow(line))
	}

	// Reserve one row for the bottom border.
	if len(rows) > MaxHeight-1 {
		rows = rows[:MaxHeight-1]
	}
	rows = append(rows, bottomBorder())

	return strings.Join(rows, "\n")
}

// comparison builds the shared before/after body: a label row, the two
// panels side by side, and a measurement row quoting the offending value on
// the left and the suggested fix on the right.
func comparison(issue Issue, before, after []string) []string {
	for len(before) < len(after) {
		before = append(before, "")
	}
	for len(after) < len(before) {
		after = append(after, "")
	}

	body := []string{splitRow("before "+glyphProblem, "after "+glyphFixed), splitRow("", "")}
	for i := range before {
		body = append(body, splitRow(before[i], after[i]))
	}
	body = append(body, splitRow("", ""))
	body = append(body, splitRow(issue.Value, issue.Suggestion))
	return body
}

// box draws a small rectangle width cells wide with a one-line label inside.
// The label is truncated to fit.
func box(label string, width int) []string {
	if width < 4 {
		width = 4
	}
	return []string{
		cornerTL + repeatCells(lineH, width-2) + cornerTR,
		lineV + fit(label, width-2) + lineV,
		cornerBL + repeatCells(lineH, width-2) + cornerBR,
	}
}

// bar draws a solid block bar of the given width with a trailing label.
func bar(fill string, width int, label string) string {
	s := repeatCells(fill, width)
	if label != "" {
		s += " " + label
	}
	return s
}
