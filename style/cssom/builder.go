package cssom

import (
	"github.com/npillmayer/pwss/style"
	"github.com/npillmayer/pwss/style/selector"
)

// Builder assembles a stylesheet in code. Builders are not safe for
// concurrent use.
//
// Errors are sticky: after the first selector error every further call is a
// no-op and Build will return that error. Declaration errors are collected
// as diagnostics, as they would be when parsing.
type Builder struct {
	rules       []Rule
	diagnostics []Diagnostic
	err         error
}

// NewBuilder creates an empty stylesheet builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a rule with typed declarations.
func (b *Builder) Add(sel string, decls ...style.KeyValue) *Builder {
	if b.err != nil {
		return b
	}
	chain, spec, err := selector.Compile(sel)
	if err != nil {
		b.err = err
		return b
	}
	b.rules = append(b.rules, Rule{
		Selector:     chain,
		Specificity:  spec,
		Declarations: append([]style.KeyValue(nil), decls...),
	})
	return b
}

// Set appends a rule with a single declaration given in textual form,
// e.g. Set("button:hover", "background", "#666").
func (b *Builder) Set(sel string, property string, raw string) *Builder {
	kv, err := style.DecodeNamed(property, raw)
	if err != nil {
		b.diagnostics = append(b.diagnostics, Diagnostic{Err: err})
		return b.Add(sel)
	}
	return b.Add(sel, kv)
}

// Append appends all rules of a stylesheet, keeping their order. Rules
// appended later win over earlier ones of equal specificity.
func (b *Builder) Append(sheet *StyleSheet) *Builder {
	if b.err != nil || sheet == nil {
		return b
	}
	b.rules = append(b.rules, sheet.Rules()...)
	b.diagnostics = append(b.diagnostics, sheet.Diagnostics()...)
	return b
}

// Build creates a new stylesheet from the rules added so far. The builder
// may be used further afterwards; the stylesheet does not share state with it.
func (b *Builder) Build() (*StyleSheet, error) {
	if b.err != nil {
		return nil, b.err
	}
	rules := append([]Rule(nil), b.rules...)
	diags := append([]Diagnostic(nil), b.diagnostics...)
	sheet := newStyleSheet(rules, diags)
	tracer().Debugf("built stylesheet v%d with %d rules", sheet.Version(), sheet.Len())
	return sheet, nil
}

// Merge concatenates stylesheets into a new one. Rules of later sheets win
// over rules of equal specificity in earlier ones.
func Merge(sheets ...*StyleSheet) *StyleSheet {
	b := NewBuilder()
	for _, s := range sheets {
		b.Append(s)
	}
	sheet, _ := b.Build() // cannot fail, no selectors compiled
	return sheet
}
