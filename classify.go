package layoutlint

import "github.com/yacobolo/layoutlint/internal/diagram"

// Category groups issue kinds for statistics and filtering.
type Category string

// Issue categories.
const (
	CategoryFlex     Category = "flex"
	CategoryGrid     Category = "grid"
	CategoryOverflow Category = "overflow"
	CategoryOther    Category = "other"
)

// diagramRef binds an issue kind to its diagram type and category.
type diagramRef struct {
	diagramType string
	category    Category
}

// kindDiagrams maps issue kinds to diagram types. KindLayoutImportant has
// no entry: there is no useful picture of a specificity fight, so it stays
// text-only.
var kindDiagrams = map[string]diagramRef{
	KindFixedWidth:          {diagram.TypeFixedDimensions, CategoryOther},
	KindFixedHeight:         {diagram.TypeFixedDimensions, CategoryOther},
	KindFixedBoxDimensions:  {diagram.TypeFixedDimensions, CategoryOther},
	KindFixedMinimumSize:    {diagram.TypeFixedDimensions, CategoryOther},
	KindMixedBoxSizing:      {diagram.TypeMixedBoxSizing, CategoryOther},
	KindVisibleOverflow:     {diagram.TypeHorizontalOverflow, CategoryOverflow},
	KindSpacingWithWidth:    {diagram.TypeHorizontalOverflow, CategoryOverflow},
	KindNowrapWithWidth:     {diagram.TypeHorizontalOverflow, CategoryOverflow},
	KindMediaConflict:       {diagram.TypeMediaConflict, CategoryOther},
	KindHiddenBodyOverflow:  {diagram.TypeOverflowMask, CategoryOverflow},
	KindFullViewportWidth:   {diagram.TypeViewportWidth, CategoryOverflow},
	KindBreakpointOverflow:  {diagram.TypeBreakpointOverflow, CategoryOverflow},
	KindUnstableMediaWidth:  {diagram.TypeMediaInstability, CategoryOther},
	KindRigidFlexBasis:      {diagram.TypeFlexFragility, CategoryFlex},
	KindMissingFlexWrap:     {diagram.TypeFlexFragility, CategoryFlex},
	KindRigidFlexItem:       {diagram.TypeFlexFragility, CategoryFlex},
	KindRigidGridTracks:     {diagram.TypeGridRigidity, CategoryGrid},
	KindAbsoluteContainment: {diagram.TypeAbsoluteContainment, CategoryOther},
	KindFixedSpacing:        {diagram.TypeFixedSpacing, CategoryOther},
}

// CategoryOf returns the category for an issue kind. Unknown kinds fall
// into CategoryOther, so the function is total.
func CategoryOf(kind string) Category {
	if ref, ok := kindDiagrams[kind]; ok {
		return ref.category
	}
	return CategoryOther
}

// ToDiagramIssue converts an analyzer issue into the diagram renderer's
// input. The second return is false when the kind has no diagram.
func ToDiagramIssue(issue Issue) (diagram.Issue, bool) {
	ref, ok := kindDiagrams[issue.Kind]
	if !ok {
		return diagram.Issue{}, false
	}

	line := issue.Line
	if line < 1 {
		line = 1
	}
	// Kinds about an absent declaration (missing flex-wrap, mixed sizing)
	// carry no value; the renderer still needs one for its measurement row.
	value := issue.Value
	if value == "" {
		value = "(not set)"
	}
	return diagram.Issue{
		Type:       ref.diagramType,
		Severity:   string(issue.Severity),
		Line:       line,
		Selector:   issue.Selector,
		Property:   issue.Property,
		Value:      value,
		Suggestion: issue.Suggestion,
	}, true
}
