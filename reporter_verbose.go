package layoutlint

import (
	"fmt"
	"io"

	"github.com/yacobolo/layoutlint/internal/diagram"
)

// VerboseReporter handles detailed statistics, explanations, and diagrams.
type VerboseReporter struct {
	w         io.Writer
	useColors bool
	diagrams  *diagram.Registry
}

// NewVerboseReporter creates a verbose reporter. A nil registry disables
// diagram output.
func NewVerboseReporter(w io.Writer, useColors bool, diagrams *diagram.Registry) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
		diagrams:  diagrams,
	}
}

// PrintStatistics outputs run statistics.
func (r *VerboseReporter) PrintStatistics(result Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Layout Analysis Statistics", r.useColors))
	fmt.Fprintln(r.w, "----------------------------")

	counts := result.CountBySeverity()
	fmt.Fprintf(r.w, "Files Discovered:  %d\n", result.Stats.FilesDiscovered)
	fmt.Fprintf(r.w, "Files Scanned:     %d\n", result.Stats.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:     %d\n", result.Stats.FilesSkipped)
	fmt.Fprintf(r.w, "Total Issues:      %d\n", len(result.Issues))
	fmt.Fprintf(r.w, "Critical:          %d\n", counts[SeverityCritical])
	fmt.Fprintf(r.w, "Medium:            %d\n", counts[SeverityMedium])
	fmt.Fprintf(r.w, "Low:               %d\n", counts[SeverityLow])

	categories := result.CountByCategory()
	if len(categories) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleCyan, "By Category", r.useColors))
		fmt.Fprintln(r.w, "-------------")
		for _, cat := range []Category{CategoryOverflow, CategoryFlex, CategoryGrid, CategoryOther} {
			if categories[cat] > 0 {
				fmt.Fprintf(r.w, "* %s: %d\n", cat, categories[cat])
			}
		}
	}
}

// PrintExplanations outputs the full explanatory block for every issue,
// with its diagram when one exists and the registry is attached.
func (r *VerboseReporter) PrintExplanations(result Result) {
	if len(result.Issues) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Findings", r.useColors))
	fmt.Fprintln(r.w, "----------")

	for _, fi := range result.Issues {
		fmt.Fprintln(r.w, "")
		fmt.Fprintf(r.w, "%s\n", RenderStyle(StyleGray, Position(fi.File, fi.Issue), r.useColors))
		fmt.Fprint(r.w, FormatIssue(fi.Issue, r.useColors))

		if r.diagrams == nil {
			continue
		}
		if di, ok := ToDiagramIssue(fi.Issue); ok {
			vis := r.diagrams.Generate(di)
			fmt.Fprintln(r.w, "")
			fmt.Fprintln(r.w, vis.ASCII)
		}
	}
}

// PrintWarnings shows scan warnings.
func (r *VerboseReporter) PrintWarnings(result Result) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}
