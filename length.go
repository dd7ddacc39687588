package layoutlint

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// pxTokenRE matches a pixel length token on word boundaries: "500px",
// "1.5px". It deliberately also matches inside composite values such as
// "0 0 240px" or "calc(600px - 2rem)"; detectors want those numbers.
var pxTokenRE = regexp.MustCompile(`\b(\d+(?:\.\d+)?)px\b`)

// vwTokenRE and pctTokenRE support the pixel estimator.
var (
	vwTokenRE  = regexp.MustCompile(`\b(\d+(?:\.\d+)?)vw\b`)
	pctTokenRE = regexp.MustCompile(`\b(\d+(?:\.\d+)?)%`)
)

// pxValue returns the first pixel token in a value, if any.
func pxValue(value string) (float64, bool) {
	m := pxTokenRE.FindStringSubmatch(value)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// allPxValues returns every pixel token in a value, in order.
func allPxValues(value string) []float64 {
	var out []float64
	for _, m := range pxTokenRE.FindAllStringSubmatch(value, -1) {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// hasPx reports whether the value contains a pixel token.
func hasPx(value string) bool {
	return pxTokenRE.MatchString(value)
}

// PixelEstimate converts a CSS length string to an approximate pixel value
// against the given viewport width. Unparseable values return NaN; callers
// that gate on thresholds treat NaN as "report" (fail open).
func PixelEstimate(value string, viewportPx float64) float64 {
	value = strings.TrimSpace(value)

	if n, ok := pxValue(value); ok {
		return n
	}
	if m := vwTokenRE.FindStringSubmatch(value); m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			return n / 100 * viewportPx
		}
	}
	if m := pctTokenRE.FindStringSubmatch(value); m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			return n / 100 * viewportPx
		}
	}
	return math.NaN()
}
