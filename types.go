package layoutlint

// AtRule records the at-rule context a rule was found in.
// Only @media grouping is tracked; other at-rules are left in place and
// parsed as ordinary rule text.
type AtRule struct {
	Type      string // "media"
	Condition string // "(max-width: 768px)"
}

// ParsedRule is a single selector with its declaration block.
// Declarations are keyed by lower-cased property name; when a property is
// declared twice in one block, the last occurrence wins.
//
// Selectors are intentionally not unique: the same selector may appear once
// in base CSS and again inside one or more media blocks. Detectors that
// compare base and media variants rely on this.
type ParsedRule struct {
	Selector     string
	Declarations map[string]string
	AtRule       *AtRule // nil for base (non-media) rules
}

// InMedia reports whether the rule was found inside a @media block.
func (r ParsedRule) InMedia() bool {
	return r.AtRule != nil && r.AtRule.Type == "media"
}

// ParsedDocument holds all rules extracted from one stylesheet, in source
// order (base rules first, then media rules per block).
type ParsedDocument struct {
	Rules []ParsedRule
}

// Mode selects analysis strictness.
type Mode string

// Analysis modes.
const (
	// ModeStrict reports every match regardless of magnitude.
	ModeStrict Mode = "strict"
	// ModePragmatic applies numeric thresholds to reduce noise.
	ModePragmatic Mode = "pragmatic"
)

// Config holds the per-invocation analysis configuration.
// The core never mutates it.
type Config struct {
	Mode Mode

	// Pixel thresholds used in pragmatic mode. A value must be strictly
	// greater than its threshold to be reported.
	FixedWidthThresholdPx   float64
	FixedHeightThresholdPx  float64
	FixedSpacingThresholdPx float64

	// IgnoreSelectors is matched as a case-insensitive substring against
	// each rule's selector; matching rules are skipped by per-rule detectors.
	IgnoreSelectors []string

	// MaxProblems caps the number of reported issues (0 = unlimited).
	MaxProblems int
}

// DefaultConfig returns the configuration used when the caller supplies none.
func DefaultConfig() Config {
	return Config{
		Mode:                    ModePragmatic,
		FixedWidthThresholdPx:   360,
		FixedHeightThresholdPx:  600,
		FixedSpacingThresholdPx: 32,
		MaxProblems:             200,
	}
}

// OutputFormat represents the reporter output format.
type OutputFormat string

const (
	// OutputIssues shows only issues in golangci-lint format (CI-friendly).
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics only (weekly reports).
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics (interactive development).
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration).
	OutputJSON OutputFormat = "json"
)
