package diagram

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Diagram type identifiers. These are the keys callers classify issues
// into; one generator exists per type.
const (
	TypeFixedDimensions     = "fixed-dimensions"
	TypeMixedBoxSizing      = "mixed-box-sizing"
	TypeHorizontalOverflow  = "horizontal-overflow"
	TypeMediaConflict       = "media-conflict"
	TypeOverflowMask        = "overflow-mask"
	TypeViewportWidth       = "viewport-width"
	TypeBreakpointOverflow  = "breakpoint-overflow"
	TypeMediaInstability    = "media-instability"
	TypeFlexFragility       = "flex-fragility"
	TypeGridRigidity        = "grid-rigidity"
	TypeAbsoluteContainment = "absolute-containment"
	TypeFixedSpacing        = "fixed-spacing"
)

// cacheCapacity bounds the rendered-diagram cache. Stylesheets repeat the
// same offending values constantly, so a small cache covers most hits.
const cacheCapacity = 256

// Registry owns the generator set, the render cache, and the safety wrapper
// around generation. It is safe for concurrent use.
type Registry struct {
	mu         sync.Mutex
	factories  map[string]func() Generator
	generators map[string]Generator
	cache      *lruCache
	logger     *zap.Logger
}

// NewRegistry builds a registry with every generator registered lazily.
// A nil logger disables budget diagnostics.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		factories: map[string]func() Generator{
			TypeFixedDimensions:     func() Generator { return &fixedDimensionsGen{} },
			TypeMixedBoxSizing:      func() Generator { return &mixedBoxSizingGen{} },
			TypeHorizontalOverflow:  func() Generator { return &horizontalOverflowGen{} },
			TypeMediaConflict:       func() Generator { return &mediaConflictGen{} },
			TypeOverflowMask:        func() Generator { return &overflowMaskGen{} },
			TypeViewportWidth:       func() Generator { return &viewportWidthGen{} },
			TypeBreakpointOverflow:  func() Generator { return &breakpointOverflowGen{} },
			TypeMediaInstability:    func() Generator { return &mediaInstabilityGen{} },
			TypeFlexFragility:       func() Generator { return &flexFragilityGen{} },
			TypeGridRigidity:        func() Generator { return &gridRigidityGen{} },
			TypeAbsoluteContainment: func() Generator { return &absoluteContainmentGen{} },
			TypeFixedSpacing:        func() Generator { return &fixedSpacingGen{} },
		},
		generators: make(map[string]Generator),
		cache:      newLRUCache(cacheCapacity),
		logger:     logger,
	}
}

// SupportedIssueTypes returns every registered diagram type, sorted.
func (r *Registry) SupportedIssueTypes() []string {
	types := make([]string, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Generate renders the diagram for an issue. It never panics and always
// returns a usable visualization: invalid issues and generator panics
// produce an error diagram, unknown types a one-line fallback.
func (r *Registry) Generate(issue Issue) Visualization {
	start := time.Now()

	if err := validate(issue); err != nil {
		return finish(errorDiagram(issue, err), start)
	}

	gen, ok := r.generator(issue.Type)
	if !ok {
		return finish(fallbackDiagram(issue), start)
	}

	key := fmt.Sprintf("%s:%s:%s", issue.Type, issue.Severity, issue.Value)
	if vis, hit := r.cache.get(key); hit {
		return vis
	}

	ascii, err := safeRender(gen, issue)
	if err != nil {
		return finish(errorDiagram(issue, err), start)
	}

	vis := finish(ascii, start)
	if vis.GenerationTimeMs > softBudgetMs {
		r.logger.Warn("diagram generation over budget",
			zap.String("type", issue.Type),
			zap.Float64("ms", vis.GenerationTimeMs))
	}

	r.cache.put(key, vis)
	return vis
}

// generator returns the memoized instance for a type, constructing it on
// first use.
func (r *Registry) generator(diagramType string) (Generator, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen, ok := r.generators[diagramType]; ok {
		return gen, true
	}
	factory, ok := r.factories[diagramType]
	if !ok {
		return nil, false
	}
	gen := factory()
	r.generators[diagramType] = gen
	return gen, true
}

// safeRender runs a generator with panic recovery.
func safeRender(gen Generator, issue Issue) (ascii string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("diagram generator %q panicked: %v", gen.Type(), rec)
		}
	}()
	return gen.Render(issue), nil
}

// validate checks the fields every generator relies on. Suggestion is the
// only optional field.
func validate(issue Issue) error {
	switch {
	case issue.Type == "":
		return fmt.Errorf("diagram issue missing type")
	case issue.Severity == "":
		return fmt.Errorf("diagram issue missing severity")
	case issue.Line < 1:
		return fmt.Errorf("diagram issue has invalid line %d", issue.Line)
	case issue.Selector == "":
		return fmt.Errorf("diagram issue missing selector")
	case issue.Property == "":
		return fmt.Errorf("diagram issue missing property")
	case issue.Value == "":
		return fmt.Errorf("diagram issue missing value")
	}
	return nil
}

// finish measures a rendered body into a Visualization.
func finish(ascii string, start time.Time) Visualization {
	width, height := 0, 0
	for _, line := range strings.Split(ascii, "\n") {
		height++
		if w := cellWidth(line); w > width {
			width = w
		}
	}
	return Visualization{
		ASCII:            ascii,
		Width:            width,
		Height:           height,
		GenerationTimeMs: float64(time.Since(start).Microseconds()) / 1000,
	}
}

// errorDiagram renders a framed notice when an issue cannot be drawn.
func errorDiagram(issue Issue, err error) string {
	title := "DIAGRAM UNAVAILABLE " + glyphProblem
	rows := []string{
		topBorder(),
		contentRow(title),
		divider(),
		contentRow(err.Error()),
	}
	if issue.Selector != "" {
		rows = append(rows, contentRow("selector: "+issue.Selector))
	}
	rows = append(rows, bottomBorder())
	return strings.Join(rows, "\n")
}

// fallbackDiagram is the one-line stand-in for issue types with no
// registered generator.
func fallbackDiagram(issue Issue) string {
	return fmt.Sprintf("no diagram available for %q (L%d %s)",
		issue.Type, issue.Line, issue.Selector)
}
