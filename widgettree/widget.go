package widgettree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/pwss/style/selector"
	"github.com/npillmayer/pwss/tree"
)

// Widget is a node of a widget tree.
type Widget struct {
	tree.Node[*Widget] // we build on top of general purpose tree
	typeName           string
	mu                 sync.RWMutex // guards classes and states
	classes            []string
	states             []string
}

// New creates a widget of a given type, optionally with classes.
func New(typeName string, classes ...string) *Widget {
	w := &Widget{typeName: typeName}
	w.Payload = w // Payload will always reference the widget itself
	w.classes = normalize(classes)
	return w
}

// FromNode gets the widget from a generic tree node.
func FromNode(n *tree.Node[*Widget]) *Widget {
	if n == nil {
		return nil
	}
	return n.Payload
}

// Add appends children to w and returns w.
func (w *Widget) Add(children ...*Widget) *Widget {
	for _, ch := range children {
		w.AddChild(&ch.Node)
	}
	return w
}

// Children returns the child widgets of w.
func (w *Widget) Children() []*Widget {
	nodes := w.Node.Children()
	children := make([]*Widget, len(nodes))
	for i, n := range nodes {
		children[i] = n.Payload
	}
	return children
}

// Remove detaches w from its parent. Later siblings move up by one.
func (w *Widget) Remove() *Widget {
	w.Isolate()
	return w
}

// SetClass adds or removes a class.
func (w *Widget) SetClass(class string, on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.classes = toggle(w.classes, class, on)
}

// SetState activates or deactivates a state, e.g. selector.Hover.
func (w *Widget) SetState(state string, on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.states = toggle(w.states, state, on)
	tracer().Debugf("%s: state %s = %v", w.typeName, state, on)
}

// --- selector.QueryNode ----------------------------------------------------

// TypeName is part of selector.QueryNode.
func (w *Widget) TypeName() string {
	return w.typeName
}

// Classes is part of selector.QueryNode. Classes are sorted.
func (w *Widget) Classes() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]string(nil), w.classes...)
}

// ActiveStates is part of selector.QueryNode. States are sorted.
func (w *Widget) ActiveStates() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]string(nil), w.states...)
}

// Parent is part of selector.QueryNode.
func (w *Widget) Parent() selector.QueryNode {
	if p := w.Node.Parent(); p != nil {
		return p.Payload
	}
	return nil
}

// PrecedingSiblings is part of selector.QueryNode.
func (w *Widget) PrecedingSiblings() []selector.QueryNode {
	p := w.Node.Parent()
	if p == nil {
		return nil
	}
	var sibs []selector.QueryNode
	for _, n := range p.Children() {
		if n == &w.Node {
			break
		}
		sibs = append(sibs, n.Payload)
	}
	return sibs
}

var _ selector.QueryNode = (*Widget)(nil)

// Path returns a selector-like description of w and its ancestors, e.g.
// "window > column.fancy > button:hover".
func (w *Widget) Path() string {
	var parts []string
	for n := w; n != nil; n = FromNode(n.Node.Parent()) {
		parts = append(parts, n.Label())
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " > ")
}

// Label describes w alone, e.g. "button.primary:hover".
func (w *Widget) Label() string {
	var b strings.Builder
	b.WriteString(w.typeName)
	for _, c := range w.Classes() {
		b.WriteString("." + c)
	}
	for _, s := range w.ActiveStates() {
		b.WriteString(":" + s)
	}
	return b.String()
}

// Walk visits w and all its descendants in document order.
func (w *Widget) Walk(visit func(w *Widget, depth int)) {
	w.Node.Walk(func(n *tree.Node[*Widget], depth int) bool {
		visit(n.Payload, depth)
		return true
	})
}

// --- Sets of names ---------------------------------------------------------

func normalize(names []string) []string {
	var set []string
	for _, n := range names {
		set = toggle(set, n, true)
	}
	return set
}

// toggle adds or removes s from a sorted set.
func toggle(set []string, s string, on bool) []string {
	i := sort.SearchStrings(set, s)
	present := i < len(set) && set[i] == s
	switch {
	case on && !present:
		set = append(set, "")
		copy(set[i+1:], set[i:])
		set[i] = s
	case !on && present:
		set = append(set[:i], set[i+1:]...)
	}
	return set
}
