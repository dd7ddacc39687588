package layoutlint

import (
	"io"
	"os"

	"github.com/yacobolo/layoutlint/internal/diagram"
)

// DetermineOutputFormat selects the output format based on flags.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit --quiet flag wins (exit code only)
	if quiet {
		return OutputIssues // Issues only, suppressed by the caller
	}

	// Explicit format flag wins
	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}

	// Issues only by default (clean, fast, consistent everywhere)
	return OutputIssues
}

// WriteOutput writes the analysis result in the specified format.
// The diagram registry is only consulted for the full format; passing nil
// suppresses diagrams there too.
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config ReportConfig, diagrams *diagram.Registry) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		useColors := shouldUseColors(config)
		verbose := NewVerboseReporter(w, useColors, nil)
		verbose.PrintStatistics(*result)
		verbose.PrintWarnings(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

		verbose := NewVerboseReporter(w, reporter.UseColors(), diagrams)
		verbose.PrintStatistics(*result)
		verbose.PrintExplanations(*result)
		verbose.PrintWarnings(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	}
}
