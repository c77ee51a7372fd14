package pwss

import (
	"github.com/npillmayer/pwss/style/cascade"
	"github.com/npillmayer/pwss/style/cssom"
	"github.com/npillmayer/pwss/style/selector"
)

// LoadStylesheet parses stylesheet source text. A *cssom.SyntaxError is
// fatal and no stylesheet is returned. Declarations which could not be
// decoded are dropped and reported by the stylesheet's Diagnostics.
func LoadStylesheet(source string) (*cssom.StyleSheet, error) {
	return cssom.Parse(source)
}

// ResolveStyle computes the style of a widget. Hosts styling many widgets
// repeatedly should use an engine.Engine, which caches resolved styles.
func ResolveStyle(sheet *cssom.StyleSheet, node selector.QueryNode) *cascade.ResolvedStyle {
	return cascade.Resolve(sheet, node)
}
