package layoutlint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/layoutlint/internal/diagram"
)

func TestToDiagramIssue_EveryKindExceptImportant(t *testing.T) {
	allKinds := []string{
		KindFixedWidth, KindFixedHeight, KindFixedBoxDimensions, KindFixedMinimumSize,
		KindMixedBoxSizing, KindVisibleOverflow, KindSpacingWithWidth, KindNowrapWithWidth,
		KindMediaConflict, KindHiddenBodyOverflow, KindFullViewportWidth,
		KindBreakpointOverflow, KindUnstableMediaWidth, KindRigidFlexBasis,
		KindMissingFlexWrap, KindRigidFlexItem, KindRigidGridTracks,
		KindAbsoluteContainment, KindFixedSpacing,
	}

	for _, kind := range allKinds {
		issue := newIssue(kind, SeverityMedium, ".a", "width", "500px")
		issue.Line = 3

		di, ok := ToDiagramIssue(issue)
		require.True(t, ok, kind)
		assert.NotEmpty(t, di.Type, kind)
		assert.Equal(t, 3, di.Line)
		assert.Equal(t, ".a", di.Selector)
	}
}

func TestToDiagramIssue_ImportantHasNoDiagram(t *testing.T) {
	issue := newIssue(KindLayoutImportant, SeverityLow, ".a", "width", "100px !important")
	_, ok := ToDiagramIssue(issue)
	assert.False(t, ok)
}

func TestToDiagramIssue_DefaultsMissingFields(t *testing.T) {
	issue := newIssue(KindMissingFlexWrap, SeverityMedium, ".row", "flex-wrap", "")
	// Line never attached.

	di, ok := ToDiagramIssue(issue)
	require.True(t, ok)
	assert.Equal(t, 1, di.Line)
	assert.Equal(t, "(not set)", di.Value)
}

func TestToDiagramIssue_TypeMapping(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{KindFixedWidth, diagram.TypeFixedDimensions},
		{KindMixedBoxSizing, diagram.TypeMixedBoxSizing},
		{KindNowrapWithWidth, diagram.TypeHorizontalOverflow},
		{KindMediaConflict, diagram.TypeMediaConflict},
		{KindHiddenBodyOverflow, diagram.TypeOverflowMask},
		{KindFullViewportWidth, diagram.TypeViewportWidth},
		{KindBreakpointOverflow, diagram.TypeBreakpointOverflow},
		{KindUnstableMediaWidth, diagram.TypeMediaInstability},
		{KindRigidFlexBasis, diagram.TypeFlexFragility},
		{KindRigidGridTracks, diagram.TypeGridRigidity},
		{KindAbsoluteContainment, diagram.TypeAbsoluteContainment},
		{KindFixedSpacing, diagram.TypeFixedSpacing},
	}

	for _, tt := range tests {
		issue := newIssue(tt.kind, SeverityMedium, ".a", "width", "500px")
		issue.Line = 1
		di, ok := ToDiagramIssue(issue)
		require.True(t, ok, tt.kind)
		assert.Equal(t, tt.want, di.Type, tt.kind)
	}
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, CategoryFlex, CategoryOf(KindRigidFlexBasis))
	assert.Equal(t, CategoryFlex, CategoryOf(KindMissingFlexWrap))
	assert.Equal(t, CategoryGrid, CategoryOf(KindRigidGridTracks))
	assert.Equal(t, CategoryOverflow, CategoryOf(KindVisibleOverflow))
	assert.Equal(t, CategoryOverflow, CategoryOf(KindHiddenBodyOverflow))
	assert.Equal(t, CategoryOther, CategoryOf(KindFixedWidth))
	assert.Equal(t, CategoryOther, CategoryOf(KindLayoutImportant))
	assert.Equal(t, CategoryOther, CategoryOf("never heard of it"))
}
