package layoutlint

import (
	"regexp"
	"strconv"
	"strings"
)

// flexShorthandRE matches the rigid "flex: 0 0 <N>px" shorthand.
var flexShorthandRE = regexp.MustCompile(`^\s*0\s+0\s+(\d+(?:\.\d+)?)px\b`)

// detectFlexFragility flags flex containers and items that defeat the point
// of flexbox: nowrap containers with pixel bases, containers that never
// declare flex-wrap at all, and items pinned with grow 0 / shrink 0 on a
// pixel basis.
func detectFlexFragility(doc *ParsedDocument, _ string, cfg Config) []Issue {
	var issues []Issue

	for _, rule := range doc.Rules {
		if selectorIgnored(cfg, rule.Selector) {
			continue
		}
		if !strings.Contains(strings.ToLower(rule.Declarations["display"]), "flex") {
			continue
		}

		basis, basisOK := pxValue(rule.Declarations["flex-basis"])
		basisValue := rule.Declarations["flex-basis"]
		if !basisOK {
			if m := flexShorthandRE.FindStringSubmatch(rule.Declarations["flex"]); m != nil {
				if n, err := strconv.ParseFloat(m[1], 64); err == nil {
					basis, basisOK = n, true
					basisValue = rule.Declarations["flex"]
				}
			}
		}

		nowrap := strings.EqualFold(strings.TrimSpace(rule.Declarations["flex-wrap"]), "nowrap")
		if nowrap && basisOK && cfg.ShouldReport(ThresholdFlexBasis, basis) {
			issues = append(issues, newIssue(KindRigidFlexBasis, SeverityCritical,
				rule.Selector, "flex-basis", basisValue))
		}

		if _, declared := rule.Declarations["flex-wrap"]; !declared {
			issues = append(issues, newIssue(KindMissingFlexWrap, SeverityMedium,
				rule.Selector, "flex-wrap", ""))
		}

		if strings.TrimSpace(rule.Declarations["flex-grow"]) == "0" &&
			strings.TrimSpace(rule.Declarations["flex-shrink"]) == "0" {
			if n, ok := pxValue(rule.Declarations["flex-basis"]); ok &&
				cfg.ShouldReport(ThresholdFlexBasis, n) {
				issues = append(issues, newIssue(KindRigidFlexItem, SeverityMedium,
					rule.Selector, "flex-basis", rule.Declarations["flex-basis"]))
			}
		}
	}

	return issues
}

// gridTrackProps are the declarations scanned for fixed pixel tracks.
var gridTrackProps = []string{"grid-template-columns", "grid-template-rows", "grid-auto-columns"}

// detectGridRigidity flags grid containers whose track definitions use
// pixel lengths. Gated on the largest track found, so a grid of small fixed
// gutters next to fluid columns passes in pragmatic mode.
func detectGridRigidity(doc *ParsedDocument, _ string, cfg Config) []Issue {
	var issues []Issue

	for _, rule := range doc.Rules {
		if selectorIgnored(cfg, rule.Selector) {
			continue
		}
		if !strings.Contains(strings.ToLower(rule.Declarations["display"]), "grid") {
			continue
		}

		var maxTrack float64
		var property, value string
		for _, prop := range gridTrackProps {
			for _, n := range allPxValues(rule.Declarations[prop]) {
				if property == "" || n > maxTrack {
					maxTrack = n
					property = prop
					value = rule.Declarations[prop]
				}
			}
		}
		if property == "" {
			continue
		}

		if cfg.ShouldReport(ThresholdGridTrack, maxTrack) {
			issues = append(issues, newIssue(KindRigidGridTracks, SeverityMedium,
				rule.Selector, property, value))
		}
	}

	return issues
}

// absoluteOffsetProps are the declarations that pin an absolutely
// positioned element, checked in this order.
var absoluteOffsetProps = []string{"left", "right", "top", "bottom", "width"}

// detectAbsoluteContainment flags absolutely positioned rules that pin the
// element with pixel offsets or a pixel width. One issue per rule, on the
// first pinned property.
func detectAbsoluteContainment(doc *ParsedDocument, _ string, cfg Config) []Issue {
	var issues []Issue

	for _, rule := range doc.Rules {
		if selectorIgnored(cfg, rule.Selector) {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(rule.Declarations["position"]), "absolute") {
			continue
		}

		for _, prop := range absoluteOffsetProps {
			if hasPx(rule.Declarations[prop]) {
				issues = append(issues, newIssue(KindAbsoluteContainment, SeverityMedium,
					rule.Selector, prop, rule.Declarations[prop]))
				break
			}
		}
	}

	return issues
}

// layoutImportantPrefixes are the property families where !important most
// often papers over a layout fight.
var layoutImportantPrefixes = []string{
	"width", "height", "margin", "padding", "left", "right", "top", "bottom", "flex", "grid",
}

// spacingProps are threshold-gated for the fixed-spacing finding.
var spacingProps = []string{"margin", "padding", "gap"}

// detectAntiPatterns flags !important on layout properties (once per rule)
// and oversized fixed spacing values (per property).
func detectAntiPatterns(doc *ParsedDocument, _ string, cfg Config) []Issue {
	var issues []Issue

	for _, rule := range doc.Rules {
		if selectorIgnored(cfg, rule.Selector) {
			continue
		}

		for _, prefix := range layoutImportantPrefixes {
			found := ""
			for prop, value := range rule.Declarations {
				if strings.HasPrefix(prop, prefix) && strings.Contains(value, "!important") {
					if found == "" || prop < found {
						found = prop
					}
				}
			}
			if found != "" {
				issues = append(issues, newIssue(KindLayoutImportant, SeverityLow,
					rule.Selector, found, rule.Declarations[found]))
				break
			}
		}

		for _, prop := range spacingProps {
			n, ok := pxValue(rule.Declarations[prop])
			if !ok {
				continue
			}
			if cfg.ShouldReport(ThresholdSpacing, n) {
				issues = append(issues, newIssue(KindFixedSpacing, SeverityLow,
					rule.Selector, prop, rule.Declarations[prop]))
			}
		}
	}

	return issues
}
