package layoutlint

import "strings"

// Detector inspects a parsed document (plus the raw text for detectors that
// need it) and emits zero or more issues. Detectors are pure functions with
// no shared state: they may run in any order, and no detector reads another
// detector's output.
type Detector func(doc *ParsedDocument, raw string, cfg Config) []Issue

// Detectors returns the full detector battery in its canonical order.
// The order only affects the order of the resulting issue list, never its
// contents.
func Detectors() []Detector {
	return []Detector{
		detectFixedDimensions,
		detectBoxModel,
		detectOverflowHorizontal,
		detectMediaConflicts,
		detectOverflowMaskBody,
		detectVwWidthRisk,
		detectBreakpointFixedWidth,
		detectMediaWidthInstability,
		detectFlexFragility,
		detectGridRigidity,
		detectAbsoluteContainment,
		detectAntiPatterns,
	}
}

// runDetectors executes every detector against the document.
func runDetectors(doc *ParsedDocument, raw string, cfg Config) []Issue {
	var issues []Issue
	for _, detect := range Detectors() {
		issues = append(issues, detect(doc, raw, cfg)...)
	}
	return issues
}

// selectorIgnored reports whether a rule's selector matches the configured
// ignore list (case-insensitive substring). Document-level detectors
// (BoxModel, MediaConflicts) do not consult this.
func selectorIgnored(cfg Config, selector string) bool {
	if len(cfg.IgnoreSelectors) == 0 {
		return false
	}
	lower := strings.ToLower(selector)
	for _, ignore := range cfg.IgnoreSelectors {
		if ignore == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(ignore)) {
			return true
		}
	}
	return false
}
