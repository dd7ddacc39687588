package layoutlint

// Severity classifies how likely an issue is to break a layout on small
// viewports. It is assigned by the detector at creation and never recomputed.
type Severity string

// Issue severities.
const (
	SeverityCritical Severity = "critical"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Issue kind labels. These are fixed strings: the diagram classifier and the
// JSON export both key off them.
const (
	KindFixedWidth          = "Fixed width"
	KindFixedHeight         = "Fixed height"
	KindFixedBoxDimensions  = "Fixed box dimensions"
	KindFixedMinimumSize    = "Fixed minimum size"
	KindMixedBoxSizing      = "Mixed box-sizing"
	KindVisibleOverflow     = "Visible overflow with fixed width"
	KindSpacingWithWidth    = "Fixed spacing with fixed width"
	KindNowrapWithWidth     = "No-wrap with fixed width"
	KindMediaConflict       = "Conflicting media declarations"
	KindHiddenBodyOverflow  = "Hidden body overflow"
	KindFullViewportWidth   = "Full viewport width"
	KindBreakpointOverflow  = "Fixed width exceeds breakpoint"
	KindUnstableMediaWidth  = "Unstable width across breakpoints"
	KindRigidFlexBasis      = "Rigid flex basis"
	KindMissingFlexWrap     = "Missing flex wrap"
	KindRigidFlexItem       = "Rigid flex item"
	KindRigidGridTracks     = "Rigid grid tracks"
	KindAbsoluteContainment = "Absolute positioning with fixed offsets"
	KindLayoutImportant     = "Layout !important"
	KindFixedSpacing        = "Fixed spacing"
)

// Range is a 1-based source span (columns are byte offsets within the line).
type Range struct {
	StartLine int `json:"start_line"`
	StartCol  int `json:"start_col"`
	EndLine   int `json:"end_line"`
	EndCol    int `json:"end_col"`
}

// Issue is a detected responsive-layout risk.
// Line and Range are zero until MapToLines attaches source positions.
type Issue struct {
	Kind           string   `json:"kind"`
	Severity       Severity `json:"severity"`
	Explanation    string   `json:"explanation"`
	ViewportImpact string   `json:"viewport_impact"`
	Suggestion     string   `json:"suggestion"`
	Selector       string   `json:"selector"`
	Property       string   `json:"property,omitempty"`
	Value          string   `json:"value,omitempty"`
	Line           int      `json:"line"`
	Range          *Range   `json:"range,omitempty"`
}

// issueText carries the fixed explanatory prose for one issue kind.
type issueText struct {
	explanation string
	impact      string
	suggestion  string
}

var issueTexts = map[string]issueText{
	KindFixedWidth: {
		explanation: "The element has a fixed pixel width, so it cannot shrink when the viewport is narrower than the declared value.",
		impact:      "Horizontal scrolling or clipped content on viewports narrower than the fixed width.",
		suggestion:  "max-width: 100%",
	},
	KindFixedHeight: {
		explanation: "The element has a fixed pixel height, so content that wraps on narrow viewports will overflow or be clipped.",
		impact:      "Overflowing or clipped content when text wraps onto more lines than the height allows.",
		suggestion:  "min-height instead of height",
	},
	KindFixedBoxDimensions: {
		explanation: "Both width and height are fixed in pixels. The box cannot adapt in either axis, which combines the failure modes of fixed width and fixed height.",
		impact:      "Guaranteed overflow on small viewports: the box neither shrinks nor grows with its content.",
		suggestion:  "max-width: 100% with auto height",
	},
	KindFixedMinimumSize: {
		explanation: "A fixed pixel minimum size forces the element to stay at least that large even when the viewport is smaller.",
		impact:      "The minimum wins over any fluid sizing, producing horizontal scroll below the minimum.",
		suggestion:  "min-width in relative units",
	},
	KindMixedBoxSizing: {
		explanation: "The stylesheet mixes border-box and content-box sizing. Identical declared widths render at different final sizes depending on the rule.",
		impact:      "Inconsistent element sizes and hard-to-diagnose overflow where padding is added on top of declared widths.",
		suggestion:  "box-sizing: border-box everywhere",
	},
	KindVisibleOverflow: {
		explanation: "overflow-x: visible combined with a fixed width lets content spill out of the element instead of scrolling or wrapping.",
		impact:      "Spilled content widens the page and triggers viewport-level horizontal scrolling.",
		suggestion:  "overflow-x: auto or a fluid width",
	},
	KindSpacingWithWidth: {
		explanation: "Fixed horizontal margins or padding are stacked on top of a fixed width. The total occupied width exceeds the declared width.",
		impact:      "The combined width plus spacing exceeds narrow viewports even when the width alone would fit.",
		suggestion:  "fluid width with relative spacing",
	},
	KindNowrapWithWidth: {
		explanation: "white-space: nowrap prevents text from wrapping while a fixed width caps the available space, so long text must overflow.",
		impact:      "Text runs out of the element horizontally on any viewport where it no longer fits on one line.",
		suggestion:  "allow wrapping or text-overflow: ellipsis",
	},
	KindMediaConflict: {
		explanation: "The same selector declares different values for the same property across base CSS and media blocks, which makes the rendered layout depend on breakpoint evaluation order.",
		impact:      "Inconsistent layout between breakpoints; small viewport-width changes flip the effective value.",
		suggestion:  "consolidate per-breakpoint overrides",
	},
	KindHiddenBodyOverflow: {
		explanation: "overflow-x: hidden on body masks horizontal overflow instead of fixing it. The overflowing element is still too wide; it is just clipped.",
		impact:      "Content is silently cut off on narrow viewports with no scrollbar to reach it.",
		suggestion:  "find and fix the overflowing element",
	},
	KindFullViewportWidth: {
		explanation: "width: 100vw includes the vertical scrollbar width on most desktop browsers, so the element is wider than the usable viewport.",
		impact:      "A persistent thin horizontal scrollbar whenever a vertical scrollbar is present.",
		suggestion:  "width: 100%",
	},
	KindBreakpointOverflow: {
		explanation: "A media block targeting small viewports declares a fixed width larger than the breakpoint itself, guaranteeing overflow in exactly the range the block applies to.",
		impact:      "Certain horizontal overflow on every viewport the media query matches.",
		suggestion:  "width: 100% inside the breakpoint",
	},
	KindUnstableMediaWidth: {
		explanation: "The selector jumps between different fixed pixel widths across breakpoints instead of scaling fluidly.",
		impact:      "Layout snaps at breakpoint boundaries and misbehaves at viewport widths between them.",
		suggestion:  "one fluid width with max-width caps",
	},
	KindRigidFlexBasis: {
		explanation: "A flex layout with wrapping disabled and a fixed pixel basis cannot redistribute space: items keep their basis and overflow the container.",
		impact:      "Flex items overflow the row as soon as their combined basis exceeds the viewport.",
		suggestion:  "flex-wrap: wrap or a fluid basis",
	},
	KindMissingFlexWrap: {
		explanation: "The flex container never declares flex-wrap, so it uses the nowrap default. Items are squeezed or overflow instead of wrapping.",
		impact:      "Items shrink below usable sizes or overflow on narrow viewports.",
		suggestion:  "flex-wrap: wrap",
	},
	KindRigidFlexItem: {
		explanation: "flex-grow: 0 and flex-shrink: 0 with a fixed pixel basis opts the item out of flex sizing entirely; it behaves like a fixed-width block.",
		impact:      "The item ignores available space and forces overflow once the row is narrower than its basis.",
		suggestion:  "allow shrinking (flex-shrink: 1)",
	},
	KindRigidGridTracks: {
		explanation: "Grid tracks sized in fixed pixels do not adapt to the container, so the grid overflows once the tracks no longer fit.",
		impact:      "The whole grid overflows horizontally on viewports narrower than the summed track widths.",
		suggestion:  "minmax() with fr units or auto-fit",
	},
	KindAbsoluteContainment: {
		explanation: "An absolutely positioned element with fixed pixel offsets or width is pinned to coordinates that do not scale with its containing block.",
		impact:      "The element escapes or overlaps its container when the container resizes.",
		suggestion:  "relative offsets or inset percentages",
	},
	KindLayoutImportant: {
		explanation: "!important on a layout property blocks media queries and utility overrides from adapting the layout per viewport.",
		impact:      "Responsive overrides silently fail wherever the important declaration wins the cascade.",
		suggestion:  "remove !important, fix specificity",
	},
	KindFixedSpacing: {
		explanation: "Large fixed pixel margin, padding, or gap consumes a disproportionate share of narrow viewports.",
		impact:      "Usable content width shrinks dramatically on small screens; spacing stays constant while content is squeezed.",
		suggestion:  "relative spacing (%, rem) or clamp()",
	},
}

// newIssue builds an Issue for a known kind, pulling the fixed prose from
// issueTexts. Unknown kinds produce an issue with empty prose rather than a
// panic; detectors only pass the Kind* constants.
func newIssue(kind string, severity Severity, selector, property, value string) Issue {
	text := issueTexts[kind]
	return Issue{
		Kind:           kind,
		Severity:       severity,
		Explanation:    text.explanation,
		ViewportImpact: text.impact,
		Suggestion:     text.suggestion,
		Selector:       selector,
		Property:       property,
		Value:          value,
	}
}
