package layoutlint

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the structured export schema.
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// JSONSummary contains high-level issue counts.
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Critical     int `json:"critical"`
	Medium       int `json:"medium"`
	Low          int `json:"low"`
	FilesScanned int `json:"files_scanned"`
	Truncated    int `json:"truncated,omitempty"`
}

// JSONIssue is a single finding with its file attribution.
type JSONIssue struct {
	File           string   `json:"file"`
	Line           int      `json:"line"`
	Column         int      `json:"column"`
	Kind           string   `json:"kind"`
	Severity       string   `json:"severity"`
	Category       string   `json:"category"`
	Selector       string   `json:"selector"`
	Property       string   `json:"property,omitempty"`
	Value          string   `json:"value,omitempty"`
	Explanation    string   `json:"explanation"`
	ViewportImpact string   `json:"viewport_impact"`
	Suggestion     string   `json:"suggestion"`
	Range          *Range   `json:"range,omitempty"`
	Source         string   `json:"source,omitempty"`
}

// WriteJSON writes the analysis result as indented JSON.
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts a Result to the export schema.
func buildJSONOutput(result *Result) JSONOutput {
	counts := result.CountBySeverity()

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, fi := range result.Issues {
		col := 0
		if fi.Issue.Range != nil {
			col = fi.Issue.Range.StartCol
		}
		jsonIssues[i] = JSONIssue{
			File:           fi.File,
			Line:           fi.Issue.Line,
			Column:         col,
			Kind:           fi.Issue.Kind,
			Severity:       string(fi.Issue.Severity),
			Category:       string(CategoryOf(fi.Issue.Kind)),
			Selector:       fi.Issue.Selector,
			Property:       fi.Issue.Property,
			Value:          fi.Issue.Value,
			Explanation:    fi.Issue.Explanation,
			ViewportImpact: fi.Issue.ViewportImpact,
			Suggestion:     fi.Issue.Suggestion,
			Range:          fi.Issue.Range,
			Source:         fi.SourceLine,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Critical:     counts[SeverityCritical],
			Medium:       counts[SeverityMedium],
			Low:          counts[SeverityLow],
			FilesScanned: result.Stats.FilesScanned,
			Truncated:    result.TruncatedCount,
		},
		Issues:   jsonIssues,
		Warnings: result.Warnings,
	}
}
