package cascade

import (
	"slices"

	"github.com/npillmayer/pwss/style/cssom"
	"github.com/npillmayer/pwss/style/selector"
)

// Resolve computes the style of node from sheet. It never fails: a widget
// matched by no rule gets an empty style. Resolve is safe for concurrent use,
// as stylesheets are immutable.
func Resolve(sheet *cssom.StyleSheet, node selector.QueryNode) *ResolvedStyle {
	rs := &ResolvedStyle{version: sheet.Version()}
	if sheet.Empty() || node == nil {
		return rs
	}
	matching := MatchingRules(sheet, node)
	for _, r := range matching {
		rs.apply(r)
	}
	tracer().Debugf("%s: %d of %d rules match, %d properties set",
		node.TypeName(), len(matching), sheet.Len(), len(rs.Keys()))
	return rs
}

// MatchingRules returns the rules of sheet matching node, in cascade order:
// ascending by specificity, then by position in the stylesheet.
func MatchingRules(sheet *cssom.StyleSheet, node selector.QueryNode) []*cssom.Rule {
	var matching []*cssom.Rule
	for i := 0; i < sheet.Len(); i++ {
		if r := sheet.Rule(i); selector.Matches(r.Selector, node) {
			matching = append(matching, r)
		}
	}
	slices.SortStableFunc(matching, func(a, b *cssom.Rule) int {
		if c := a.Specificity.Compare(b.Specificity); c != 0 {
			return c
		}
		return a.Index - b.Index
	})
	return matching
}
