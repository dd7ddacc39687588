package layoutlint

import (
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ruleBlockRE extracts flat "selector { declarations }" pairs from text that
// has already had media blocks removed. Malformed fragments simply do not
// match and are dropped, which is the intended best-effort recovery.
var ruleBlockRE = regexp.MustCompile(`([^{}]+)\{([^{}]*)\}`)

// Parse extracts rules and declarations from CSS source text.
// It never fails on malformed input: unterminated media blocks are consumed
// to end-of-input, and rule blocks without a closing brace are dropped.
func Parse(source string) ParsedDocument {
	src := stripComments(source)
	blocks, base := extractMediaBlocks(src)

	var rules []ParsedRule
	rules = append(rules, extractRules(base, nil)...)
	for _, b := range blocks {
		at := &AtRule{Type: "media", Condition: b.condition}
		rules = append(rules, extractRules(b.body, at)...)
	}

	return ParsedDocument{Rules: rules}
}

// stripComments removes /* ... */ comments before any structural processing,
// so comment bodies cannot affect brace counting or produce spurious blocks.
// The CSS lexer is lossless: concatenating every non-comment token
// reproduces the input without its comments.
func stripComments(source string) string {
	lexer := css.NewLexer(parse.NewInputString(source))

	var b strings.Builder
	b.Grow(len(source))
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// EOF or an unrecoverable lexing error; either way the
			// remainder carries no complete tokens.
			break
		}
		if tt == css.CommentToken {
			continue
		}
		b.Write(text)
	}
	return b.String()
}

// mediaBlock is one matched @media block.
type mediaBlock struct {
	condition string
	body      string
}

// extractMediaBlocks finds every top-level @media block via brace-depth
// scanning, returning the blocks and the remaining "base" text with the
// blocks removed. Nested {...} pairs inside a block are handled by the depth
// counter; an unmatched block consumes the rest of the input.
func extractMediaBlocks(src string) ([]mediaBlock, string) {
	var blocks []mediaBlock
	base := src

	for {
		at := strings.Index(base, "@media")
		if at < 0 {
			break
		}

		open := strings.IndexByte(base[at:], '{')
		if open < 0 {
			// Header without a block: drop the dangling at-rule.
			base = base[:at]
			break
		}
		open += at
		condition := strings.TrimSpace(base[at+len("@media") : open])

		end := matchBrace(base, open)
		if end < 0 {
			// Unterminated block: body runs to end-of-input.
			blocks = append(blocks, mediaBlock{condition: condition, body: base[open+1:]})
			base = base[:at]
			break
		}

		blocks = append(blocks, mediaBlock{condition: condition, body: base[open+1 : end]})
		base = base[:at] + base[end+1:]
	}

	return blocks, base
}

// matchBrace returns the index of the '}' closing the '{' at open, or -1 if
// the input ends before the depth returns to zero.
func matchBrace(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// extractRules pulls flat selector/declaration-block pairs out of text.
// A rule with an empty declaration block still yields a ParsedRule with an
// empty map; missing-property detectors depend on that.
func extractRules(text string, at *AtRule) []ParsedRule {
	matches := ruleBlockRE.FindAllStringSubmatch(text, -1)
	rules := make([]ParsedRule, 0, len(matches))

	for _, m := range matches {
		selector := strings.TrimSpace(m[1])
		if selector == "" {
			continue
		}
		rules = append(rules, ParsedRule{
			Selector:     selector,
			Declarations: parseDeclarations(m[2]),
			AtRule:       at,
		})
	}

	return rules
}

// parseDeclarations splits a declaration block into a property→value map.
// Property names are lower-cased; duplicate properties overwrite (last wins).
// Fragments without a colon, or empty after trimming, are ignored.
func parseDeclarations(block string) map[string]string {
	decls := make(map[string]string)

	for _, fragment := range strings.Split(block, ";") {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}

		colon := strings.IndexByte(fragment, ':')
		if colon < 0 {
			continue
		}

		property := strings.ToLower(strings.TrimSpace(fragment[:colon]))
		value := strings.TrimSpace(fragment[colon+1:])
		if property == "" {
			continue
		}
		decls[property] = value
	}

	return decls
}
