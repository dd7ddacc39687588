package layoutlint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runDetector parses source and runs a single detector with the given config.
func runDetector(t *testing.T, detect Detector, source string, cfg Config) []Issue {
	t.Helper()
	doc := Parse(source)
	return detect(&doc, source, cfg)
}

func kinds(issues []Issue) []string {
	var out []string
	for _, issue := range issues {
		out = append(out, issue.Kind)
	}
	return out
}

func TestDetectFixedDimensions(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "fixed width above threshold",
			source: `.a { width: 500px; }`,
			want:   []string{KindFixedWidth},
		},
		{
			name:   "fixed width below threshold",
			source: `.a { width: 200px; }`,
			want:   nil,
		},
		{
			name:   "fixed height above threshold",
			source: `.a { height: 700px; }`,
			want:   []string{KindFixedHeight},
		},
		{
			name:   "both fixed, both above",
			source: `.a { width: 500px; height: 700px; }`,
			want:   []string{KindFixedWidth, KindFixedHeight, KindFixedBoxDimensions},
		},
		{
			name:   "both fixed, only width above",
			source: `.a { width: 500px; height: 100px; }`,
			want:   []string{KindFixedWidth, KindFixedBoxDimensions},
		},
		{
			name:   "both fixed, both below",
			source: `.a { width: 100px; height: 100px; }`,
			want:   nil,
		},
		{
			name:   "min-width reported regardless of size",
			source: `.a { min-width: 10px; }`,
			want:   []string{KindFixedMinimumSize},
		},
		{
			name:   "min-height reported regardless of size",
			source: `.a { min-height: 5px; }`,
			want:   []string{KindFixedMinimumSize},
		},
		{
			name:   "relative units pass",
			source: `.a { width: 100%; height: 50vh; }`,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := runDetector(t, detectFixedDimensions, tt.source, cfg)
			assert.Equal(t, tt.want, kinds(issues))
		})
	}
}

func TestDetectFixedDimensions_StrictReportsSmallValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeStrict

	issues := runDetector(t, detectFixedDimensions, `.a { width: 50px; }`, cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, KindFixedWidth, issues[0].Kind)
	assert.Equal(t, SeverityMedium, issues[0].Severity)
	assert.Equal(t, "50px", issues[0].Value)
}

func TestDetectFixedDimensions_IgnoreSelectors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IgnoreSelectors = []string{".legacy-"}

	source := `
.legacy-banner { width: 900px; }
.LEGACY-footer { width: 900px; }
.modern { width: 900px; }
`
	issues := runDetector(t, detectFixedDimensions, source, cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, ".modern", issues[0].Selector)
}

func TestDetectBoxModel(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("mixed sizing flagged once", func(t *testing.T) {
		source := `
.a { box-sizing: border-box; }
.b { box-sizing: content-box; }
.c { box-sizing: border-box; }
`
		issues := runDetector(t, detectBoxModel, source, cfg)
		require.Len(t, issues, 1)
		assert.Equal(t, KindMixedBoxSizing, issues[0].Kind)
		assert.Equal(t, "*", issues[0].Selector)
	})

	t.Run("uniform sizing passes", func(t *testing.T) {
		source := `
.a { box-sizing: border-box; }
.b { box-sizing: border-box; }
`
		assert.Empty(t, runDetector(t, detectBoxModel, source, cfg))
	})

	t.Run("ignore list does not apply", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.IgnoreSelectors = []string{".a", ".b"}
		source := `
.a { box-sizing: border-box; }
.b { box-sizing: content-box; }
`
		assert.Len(t, runDetector(t, detectBoxModel, source, cfg), 1)
	})
}

func TestDetectOverflowHorizontal(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "visible overflow with fixed width",
			source: `.a { overflow-x: visible; width: 300px; }`,
			want:   []string{KindVisibleOverflow},
		},
		{
			name:   "visible overflow with fixed min-width",
			source: `.a { overflow-x: visible; min-width: 300px; }`,
			want:   []string{KindVisibleOverflow},
		},
		{
			name:   "visible overflow without fixed width",
			source: `.a { overflow-x: visible; width: 100%; }`,
			want:   nil,
		},
		{
			name:   "two fixed spacing sides with fixed width",
			source: `.a { width: 300px; margin-left: 20px; padding-right: 10px; }`,
			want:   []string{KindSpacingWithWidth},
		},
		{
			name:   "one fixed spacing side passes",
			source: `.a { width: 300px; margin-left: 20px; }`,
			want:   nil,
		},
		{
			name:   "nowrap with fixed width",
			source: `.a { white-space: nowrap; width: 300px; }`,
			want:   []string{KindNowrapWithWidth},
		},
		{
			name:   "nowrap without fixed width passes",
			source: `.a { white-space: nowrap; }`,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := runDetector(t, detectOverflowHorizontal, tt.source, cfg)
			assert.Equal(t, tt.want, kinds(issues))
		})
	}
}

func TestDetectOverflowHorizontal_NowrapIsCritical(t *testing.T) {
	issues := runDetector(t, detectOverflowHorizontal,
		`.a { white-space: nowrap; width: 300px; }`, DefaultConfig())
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityCritical, issues[0].Severity)
}

func TestDetectOverflowMaskBody(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("body with hidden overflow flagged", func(t *testing.T) {
		issues := runDetector(t, detectOverflowMaskBody,
			`body { overflow-x: hidden; }`, cfg)
		require.Len(t, issues, 1)
		assert.Equal(t, KindHiddenBodyOverflow, issues[0].Kind)
	})

	t.Run("other selectors pass", func(t *testing.T) {
		assert.Empty(t, runDetector(t, detectOverflowMaskBody,
			`.body-wrapper { overflow-x: hidden; }`, cfg))
		assert.Empty(t, runDetector(t, detectOverflowMaskBody,
			`.carousel { overflow-x: hidden; }`, cfg))
	})

	t.Run("body without hidden overflow passes", func(t *testing.T) {
		assert.Empty(t, runDetector(t, detectOverflowMaskBody,
			`body { overflow-x: auto; }`, cfg))
	})
}

func TestDetectVwWidthRisk(t *testing.T) {
	cfg := DefaultConfig()

	issues := runDetector(t, detectVwWidthRisk, `.hero { width: 100vw; }`, cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, KindFullViewportWidth, issues[0].Kind)

	assert.Empty(t, runDetector(t, detectVwWidthRisk, `.hero { width: 50vw; }`, cfg))
	assert.Empty(t, runDetector(t, detectVwWidthRisk, `.hero { width: 100%; }`, cfg))
}

func TestDetectMediaConflicts(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("conflicting values flagged once per selector", func(t *testing.T) {
		source := `
.a { width: 800px; display: block; }
@media (max-width: 768px) {
  .a { width: 400px; display: flex; }
}
`
		issues := runDetector(t, detectMediaConflicts, source, cfg)
		require.Len(t, issues, 1)
		assert.Equal(t, KindMediaConflict, issues[0].Kind)
		assert.Equal(t, ".a", issues[0].Selector)
		// First conflicting property in sorted order.
		assert.Equal(t, "display", issues[0].Property)
		assert.Equal(t, SeverityLow, issues[0].Severity)
	})

	t.Run("identical values pass", func(t *testing.T) {
		source := `
.a { width: 400px; }
@media (max-width: 768px) {
  .a { width: 400px; }
}
`
		assert.Empty(t, runDetector(t, detectMediaConflicts, source, cfg))
	})

	t.Run("different properties pass", func(t *testing.T) {
		source := `
.a { width: 400px; }
@media (max-width: 768px) {
  .a { display: none; }
}
`
		assert.Empty(t, runDetector(t, detectMediaConflicts, source, cfg))
	})
}

func TestDetectBreakpointFixedWidth(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("width exceeding breakpoint flagged", func(t *testing.T) {
		source := `
@media (max-width: 480px) {
  .a { width: 500px; }
}
`
		issues := runDetector(t, detectBreakpointFixedWidth, source, cfg)
		require.Len(t, issues, 1)
		assert.Equal(t, KindBreakpointOverflow, issues[0].Kind)
		assert.Equal(t, SeverityCritical, issues[0].Severity)
	})

	t.Run("width within breakpoint passes", func(t *testing.T) {
		source := `
@media (max-width: 480px) {
  .a { width: 400px; }
}
`
		assert.Empty(t, runDetector(t, detectBreakpointFixedWidth, source, cfg))
	})

	t.Run("base rules not considered", func(t *testing.T) {
		assert.Empty(t, runDetector(t, detectBreakpointFixedWidth,
			`.a { width: 5000px; }`, cfg))
	})

	t.Run("condition without px passes", func(t *testing.T) {
		source := `
@media print {
  .a { width: 5000px; }
}
`
		assert.Empty(t, runDetector(t, detectBreakpointFixedWidth, source, cfg))
	})
}

func TestDetectMediaWidthInstability(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("differing fixed widths flagged", func(t *testing.T) {
		source := `
.a { width: 800px; }
@media (max-width: 768px) {
  .a { width: 400px; }
}
`
		issues := runDetector(t, detectMediaWidthInstability, source, cfg)
		require.Len(t, issues, 1)
		assert.Equal(t, KindUnstableMediaWidth, issues[0].Kind)
		assert.Equal(t, "800px", issues[0].Value)
	})

	t.Run("same width passes", func(t *testing.T) {
		source := `
.a { width: 400px; }
@media (max-width: 768px) {
  .a { width: 400px; }
}
`
		assert.Empty(t, runDetector(t, detectMediaWidthInstability, source, cfg))
	})

	t.Run("no base width passes", func(t *testing.T) {
		source := `
.a { width: 100%; }
@media (max-width: 768px) {
  .a { width: 400px; }
}
`
		assert.Empty(t, runDetector(t, detectMediaWidthInstability, source, cfg))
	})

	t.Run("one issue per selector across blocks", func(t *testing.T) {
		source := `
.a { width: 800px; }
@media (max-width: 768px) { .a { width: 400px; } }
@media (max-width: 480px) { .a { width: 300px; } }
`
		assert.Len(t, runDetector(t, detectMediaWidthInstability, source, cfg), 1)
	})
}

func TestDetectFlexFragility(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("nowrap with large pixel basis", func(t *testing.T) {
		source := `.row { display: flex; flex-wrap: nowrap; flex-basis: 400px; }`
		issues := runDetector(t, detectFlexFragility, source, cfg)
		assert.Equal(t, []string{KindRigidFlexBasis}, kinds(issues))
		assert.Equal(t, SeverityCritical, issues[0].Severity)
	})

	t.Run("nowrap with flex shorthand basis", func(t *testing.T) {
		source := `.row { display: flex; flex-wrap: nowrap; flex: 0 0 400px; }`
		issues := runDetector(t, detectFlexFragility, source, cfg)
		assert.Equal(t, []string{KindRigidFlexBasis}, kinds(issues))
		assert.Equal(t, "0 0 400px", issues[0].Value)
	})

	t.Run("nowrap with small basis passes threshold", func(t *testing.T) {
		source := `.row { display: flex; flex-wrap: nowrap; flex-basis: 100px; }`
		assert.Empty(t, runDetector(t, detectFlexFragility, source, cfg))
	})

	t.Run("missing flex-wrap", func(t *testing.T) {
		source := `.row { display: flex; }`
		issues := runDetector(t, detectFlexFragility, source, cfg)
		assert.Equal(t, []string{KindMissingFlexWrap}, kinds(issues))
	})

	t.Run("declared flex-wrap wrap passes", func(t *testing.T) {
		source := `.row { display: flex; flex-wrap: wrap; }`
		assert.Empty(t, runDetector(t, detectFlexFragility, source, cfg))
	})

	t.Run("rigid flex item", func(t *testing.T) {
		source := `.item { display: flex; flex-wrap: wrap; flex-grow: 0; flex-shrink: 0; flex-basis: 400px; }`
		issues := runDetector(t, detectFlexFragility, source, cfg)
		assert.Equal(t, []string{KindRigidFlexItem}, kinds(issues))
	})

	t.Run("non-flex rules skipped", func(t *testing.T) {
		source := `.block { display: block; flex-basis: 400px; }`
		assert.Empty(t, runDetector(t, detectFlexFragility, source, cfg))
	})

	t.Run("inline-flex counts as flex", func(t *testing.T) {
		source := `.row { display: inline-flex; }`
		issues := runDetector(t, detectFlexFragility, source, cfg)
		assert.Equal(t, []string{KindMissingFlexWrap}, kinds(issues))
	})
}

func TestDetectGridRigidity(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("large pixel tracks flagged", func(t *testing.T) {
		source := `.grid { display: grid; grid-template-columns: 400px 1fr; }`
		issues := runDetector(t, detectGridRigidity, source, cfg)
		require.Len(t, issues, 1)
		assert.Equal(t, KindRigidGridTracks, issues[0].Kind)
		assert.Equal(t, "grid-template-columns", issues[0].Property)
	})

	t.Run("small tracks pass in pragmatic mode", func(t *testing.T) {
		source := `.grid { display: grid; grid-template-columns: 200px 1fr; }`
		assert.Empty(t, runDetector(t, detectGridRigidity, source, cfg))
	})

	t.Run("fr tracks pass", func(t *testing.T) {
		source := `.grid { display: grid; grid-template-columns: 1fr 2fr; }`
		assert.Empty(t, runDetector(t, detectGridRigidity, source, cfg))
	})

	t.Run("rows and auto-columns scanned", func(t *testing.T) {
		source := `.grid { display: grid; grid-auto-columns: 500px; }`
		assert.Len(t, runDetector(t, detectGridRigidity, source, cfg), 1)
	})

	t.Run("non-grid rules skipped", func(t *testing.T) {
		source := `.block { display: block; grid-template-columns: 900px; }`
		assert.Empty(t, runDetector(t, detectGridRigidity, source, cfg))
	})
}

func TestDetectAbsoluteContainment(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("fixed offsets flagged once per rule", func(t *testing.T) {
		source := `.pin { position: absolute; left: 10px; top: 20px; width: 300px; }`
		issues := runDetector(t, detectAbsoluteContainment, source, cfg)
		require.Len(t, issues, 1)
		assert.Equal(t, KindAbsoluteContainment, issues[0].Kind)
		assert.Equal(t, "left", issues[0].Property)
	})

	t.Run("relative offsets pass", func(t *testing.T) {
		source := `.pin { position: absolute; left: 10%; top: 2rem; }`
		assert.Empty(t, runDetector(t, detectAbsoluteContainment, source, cfg))
	})

	t.Run("non-absolute positioning skipped", func(t *testing.T) {
		source := `.pin { position: relative; left: 10px; }`
		assert.Empty(t, runDetector(t, detectAbsoluteContainment, source, cfg))
	})
}

func TestDetectAntiPatterns(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("layout important flagged once per rule", func(t *testing.T) {
		source := `.a { width: 100px !important; height: 50px !important; }`
		issues := runDetector(t, detectAntiPatterns, source, cfg)
		require.Len(t, issues, 1)
		assert.Equal(t, KindLayoutImportant, issues[0].Kind)
		assert.Equal(t, SeverityLow, issues[0].Severity)
	})

	t.Run("important on non-layout property passes", func(t *testing.T) {
		source := `.a { color: red !important; }`
		assert.Empty(t, runDetector(t, detectAntiPatterns, source, cfg))
	})

	t.Run("large fixed spacing flagged per property", func(t *testing.T) {
		source := `.a { margin: 48px; padding: 40px; gap: 64px; }`
		issues := runDetector(t, detectAntiPatterns, source, cfg)
		assert.Equal(t, []string{KindFixedSpacing, KindFixedSpacing, KindFixedSpacing}, kinds(issues))
	})

	t.Run("small spacing passes in pragmatic mode", func(t *testing.T) {
		source := `.a { margin: 16px; padding: 8px; }`
		assert.Empty(t, runDetector(t, detectAntiPatterns, source, cfg))
	})
}

func TestRunDetectors_OrderIndependentContents(t *testing.T) {
	source := `
body { overflow-x: hidden; }
.card { width: 500px; height: 700px; white-space: nowrap; }
.row { display: flex; }
`
	cfg := DefaultConfig()
	doc := Parse(source)

	issues := runDetectors(&doc, source, cfg)
	got := kinds(issues)

	// Every detector contributes independently of the others.
	assert.Contains(t, got, KindHiddenBodyOverflow)
	assert.Contains(t, got, KindFixedWidth)
	assert.Contains(t, got, KindFixedHeight)
	assert.Contains(t, got, KindFixedBoxDimensions)
	assert.Contains(t, got, KindNowrapWithWidth)
	assert.Contains(t, got, KindMissingFlexWrap)
}
