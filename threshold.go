package layoutlint

import "math"

// ThresholdKind names the threshold bucket an issue's numeric value is
// compared against in pragmatic mode.
type ThresholdKind string

// Threshold kinds. Width, flex-basis, and grid-track share the width
// threshold; they all measure horizontal footprint.
const (
	ThresholdWidth     ThresholdKind = "width"
	ThresholdHeight    ThresholdKind = "height"
	ThresholdSpacing   ThresholdKind = "spacing"
	ThresholdFlexBasis ThresholdKind = "flex-basis"
	ThresholdGridTrack ThresholdKind = "grid-track"
)

// thresholdFor maps a kind to the configured pixel threshold.
func (c Config) thresholdFor(kind ThresholdKind) float64 {
	switch kind {
	case ThresholdHeight:
		return c.FixedHeightThresholdPx
	case ThresholdSpacing:
		return c.FixedSpacingThresholdPx
	default: // width, flex-basis, grid-track
		return c.FixedWidthThresholdPx
	}
}

// ShouldReport decides whether a threshold-sensitive finding becomes an
// issue. It is the single chokepoint for that decision: detectors must not
// duplicate this comparison.
//
// Strict mode reports everything, including non-numeric values. Pragmatic
// mode fails open on non-finite values (a problem we could not measure is
// still a problem) and otherwise requires the value to be strictly greater
// than the kind's threshold; a value exactly at the threshold is not
// reported.
func (c Config) ShouldReport(kind ThresholdKind, value float64) bool {
	if c.Mode == ModeStrict {
		return true
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return true
	}
	return value > c.thresholdFor(kind)
}
