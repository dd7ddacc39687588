package layoutlint

import (
	"regexp"
	"strconv"
	"strings"
)

// Stylesheet variants accepted by Analyze. CSS, SCSS, and Less share enough
// block syntax for the full parser; indented Sass does not use braces, so it
// falls back to a line scan.
const (
	VariantCSS  = "css"
	VariantSCSS = "scss"
	VariantLess = "less"
	VariantSass = "sass"
)

// Analyze runs the full detector battery against one stylesheet and returns
// issues with source positions attached, capped at cfg.MaxProblems.
func Analyze(source, variant string, cfg Config) []Issue {
	var issues []Issue
	if variant == VariantSass {
		issues = fallbackScan(source, cfg)
	} else {
		doc := Parse(source)
		issues = MapToLines(runDetectors(&doc, source, cfg), source)
	}

	if cfg.MaxProblems > 0 && len(issues) > cfg.MaxProblems {
		issues = issues[:cfg.MaxProblems]
	}
	return issues
}

// Indented-Sass declaration patterns. Without braces the parser cannot
// attribute declarations to selectors, so the fallback only reports the
// per-line findings that need no rule context.
var (
	sassWidthRE  = regexp.MustCompile(`(?i)^\s*width\s*:\s*(\d+(?:\.\d+)?)px\b`)
	sassHeightRE = regexp.MustCompile(`(?i)^\s*height\s*:\s*(\d+(?:\.\d+)?)px\b`)
)

// fallbackScan is the reduced analysis for indented Sass: fixed width and
// height declarations only, with lines attached directly since the scan is
// already line-oriented.
func fallbackScan(source string, cfg Config) []Issue {
	var issues []Issue

	for i, line := range strings.Split(source, "\n") {
		if m := sassWidthRE.FindStringSubmatch(line); m != nil {
			if n, err := strconv.ParseFloat(m[1], 64); err == nil &&
				cfg.ShouldReport(ThresholdWidth, n) {
				issue := newIssue(KindFixedWidth, SeverityMedium,
					strings.TrimSpace(line), "width", m[1]+"px")
				issue.Line = i + 1
				issues = append(issues, issue)
			}
		}
		if m := sassHeightRE.FindStringSubmatch(line); m != nil {
			if n, err := strconv.ParseFloat(m[1], 64); err == nil &&
				cfg.ShouldReport(ThresholdHeight, n) {
				issue := newIssue(KindFixedHeight, SeverityMedium,
					strings.TrimSpace(line), "height", m[1]+"px")
				issue.Line = i + 1
				issues = append(issues, issue)
			}
		}
	}

	return issues
}

// VariantForPath maps a file path to the stylesheet variant Analyze expects.
// Unknown extensions are treated as plain CSS.
func VariantForPath(path string) string {
	switch {
	case strings.HasSuffix(path, ".scss"):
		return VariantSCSS
	case strings.HasSuffix(path, ".less"):
		return VariantLess
	case strings.HasSuffix(path, ".sass"):
		return VariantSass
	default:
		return VariantCSS
	}
}
