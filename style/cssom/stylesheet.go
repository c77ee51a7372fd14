package cssom

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/npillmayer/pwss/style"
	"github.com/npillmayer/pwss/style/selector"
	"go.uber.org/multierr"
)

// Rule is the type stylesheets consist of. Rules and their parts are shared
// between a stylesheet and its clients and must not be modified.
type Rule struct {
	Selector     selector.Chain
	Specificity  selector.Specificity
	Declarations []style.KeyValue // in source order; later ones win
	Index        int              // position of the rule in its stylesheet
	Line         int              // source line, 0 for rules built in code
}

func (r *Rule) String() string {
	return fmt.Sprintf("#%d %s %s", r.Index, r.Selector, r.Specificity)
}

// Diagnostic reports a declaration which has been dropped while loading a
// stylesheet.
type Diagnostic struct {
	Line   int
	Column int
	Err    error // *style.UnknownPropertyError or *style.ValueParseError
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d: %v", d.Line, d.Column, d.Err)
}

// Unwrap makes the cause of a diagnostic available to errors.As.
func (d Diagnostic) Unwrap() error {
	return d.Err
}

// StyleSheet is an immutable, ordered collection of rules.
// Order is significant: among rules of equal specificity, later rules win.
type StyleSheet struct {
	rules       []Rule
	diagnostics []Diagnostic
	version     uint64
}

var lastVersion atomic.Uint64

func newStyleSheet(rules []Rule, diagnostics []Diagnostic) *StyleSheet {
	for i := range rules {
		rules[i].Index = i
	}
	return &StyleSheet{
		rules:       rules,
		diagnostics: diagnostics,
		version:     lastVersion.Add(1),
	}
}

// Empty is true for stylesheets without any rules.
func (sheet *StyleSheet) Empty() bool {
	return sheet == nil || len(sheet.rules) == 0
}

// Len returns the number of rules.
func (sheet *StyleSheet) Len() int {
	if sheet == nil {
		return 0
	}
	return len(sheet.rules)
}

// Rule returns rule number i.
func (sheet *StyleSheet) Rule(i int) *Rule {
	return &sheet.rules[i]
}

// Rules returns all the rules of a stylesheet in source order.
func (sheet *StyleSheet) Rules() []Rule {
	if sheet == nil {
		return nil
	}
	return append([]Rule(nil), sheet.rules...)
}

// Version identifies a stylesheet. Versions are unique within a process and
// increase with every stylesheet created.
func (sheet *StyleSheet) Version() uint64 {
	if sheet == nil {
		return 0
	}
	return sheet.version
}

// Diagnostics returns the declarations dropped during loading.
func (sheet *StyleSheet) Diagnostics() []Diagnostic {
	if sheet == nil {
		return nil
	}
	return append([]Diagnostic(nil), sheet.diagnostics...)
}

// Err combines all diagnostics into a single error, or returns nil if
// loading was free of diagnostics.
func (sheet *StyleSheet) Err() error {
	var err error
	for _, d := range sheet.Diagnostics() {
		err = multierr.Append(err, d)
	}
	return err
}

// Resources lists the distinct resources (fonts and images) referenced by
// a stylesheet, sorted. Clients may use this to prefetch them.
func (sheet *StyleSheet) Resources() []style.Resource {
	set := make(map[style.Resource]struct{})
	for _, r := range sheet.Rules() {
		for _, kv := range r.Declarations {
			switch v := kv.Value.(type) {
			case style.Resource:
				if v != style.NoResource {
					set[v] = struct{}{}
				}
			case style.Background:
				if v.Kind == style.BackgroundImage || v.Kind == style.BackgroundPatch {
					set[v.Image] = struct{}{}
				}
			}
		}
	}
	res := make([]style.Resource, 0, len(set))
	for r := range set {
		res = append(res, r)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}
