package diagram

// The drawing palette. These are the only non-ASCII characters a diagram
// may contain; tests enforce the closed set.
const (
	blockFull   = "█"
	blockMedium = "▓"
	blockLight  = "░"

	lineH        = "─"
	lineV        = "│"
	cornerTL     = "┌"
	cornerTR     = "┐"
	cornerBL     = "└"
	cornerBR     = "┘"
	teeLeft      = "├"
	teeRight     = "┤"
	teeDown      = "┬"
	teeUp        = "┴"

	arrowLeft  = "←"
	arrowRight = "→"
	arrowUp    = "↑"
	arrowDown  = "↓"
	arrowBoth  = "↔"

	ellipsis = "…"

	glyphCritical = "▲"
	glyphMedium   = "◆"
	glyphLow      = "●"

	glyphProblem = "✗"
	glyphFixed   = "✓"
)

// allowedRunes is the closed set of non-ASCII runes diagrams may emit.
var allowedRunes = map[rune]bool{
	'█': true, '▓': true, '░': true,
	'─': true, '│': true, '┌': true, '┐': true, '└': true, '┘': true,
	'├': true, '┤': true, '┬': true, '┴': true,
	'←': true, '→': true, '↑': true, '↓': true, '↔': true,
	'…': true,
	'▲': true, '◆': true, '●': true,
	'✗': true, '✓': true,
}

// severityGlyph maps a severity string to its marker.
func severityGlyph(severity string) string {
	switch severity {
	case "critical":
		return glyphCritical
	case "medium":
		return glyphMedium
	case "low":
		return glyphLow
	default:
		return glyphLow
	}
}
