// Package diagram renders compact ASCII before/after illustrations for
// responsive-layout findings. Every generator produces a framed comparison
// that fits a standard terminal without wrapping.
package diagram

// Hard bounds every rendered diagram must satisfy, including borders.
const (
	MaxWidth  = 60
	MaxHeight = 20
)

// softBudgetMs is the per-diagram generation budget. Exceeding it is logged,
// never enforced: a slow diagram is still returned.
const softBudgetMs = 50.0

// Issue is the input a generator renders. Type, Severity, Line, Selector,
// Property, and Value are required; Suggestion is optional.
type Issue struct {
	Type       string
	Severity   string
	Line       int
	Selector   string
	Property   string
	Value      string
	Suggestion string
}

// Visualization is a rendered diagram plus its measured dimensions and
// generation time.
type Visualization struct {
	ASCII            string
	Width            int
	Height           int
	GenerationTimeMs float64
}

// Generator renders one diagram type.
type Generator interface {
	// Type returns the issue type this generator handles.
	Type() string
	// Render produces the diagram body. The registry wraps it with
	// validation, panic recovery, caching, and timing.
	Render(issue Issue) string
}
