package selector

// QueryNode is the read-only view of a widget the matcher works on. It is
// supplied by the owner of the widget tree; the matcher never walks a
// concrete tree type.
//
// Parent must return an untyped nil for the root of a tree.
// PrecedingSiblings returns the siblings before the widget in document
// order, i.e. the immediately preceding sibling is the last element.
type QueryNode interface {
	TypeName() string
	Classes() []string
	ActiveStates() []string
	Index() int        // position among siblings, 0-based
	SiblingCount() int // number of siblings including the widget itself
	Parent() QueryNode
	PrecedingSiblings() []QueryNode
}

// Well-known widget states. Widgets may report any other state name as well.
const (
	Hover      = "hover"
	Pressed    = "pressed"
	Checked    = "checked"
	Disabled   = "disabled"
	Focused    = "focused"
	Open       = "open"
	Closed     = "closed"
	Drag       = "drag"
	Drop       = "drop"
	DropDenied = "drop-denied"
)

// Matches checks if a widget is selected by a selector chain.
//
// Chains are matched right to left. The rightmost fragment has to match node
// itself; then the combinator stored on it determines the widget(s) the
// remaining chain is tested against:
//
//    Child              the parent
//    Descendant         every ancestor, nearest first, until one matches
//    NextSibling        the immediately preceding sibling
//    SubsequentSibling  every preceding sibling, nearest first, until one matches
func Matches(chain Chain, node QueryNode) bool {
	if len(chain) == 0 || node == nil {
		return false
	}
	return matchAt(chain, len(chain)-1, node)
}

func matchAt(chain Chain, i int, node QueryNode) bool {
	f := &chain[i]
	if !f.matches(node) {
		return false
	}
	if i == 0 {
		return true
	}
	switch f.Combinator {
	case Child:
		p := node.Parent()
		return p != nil && matchAt(chain, i-1, p)
	case Descendant:
		for p := node.Parent(); p != nil; p = p.Parent() {
			if matchAt(chain, i-1, p) {
				return true
			}
		}
	case NextSibling:
		idx, sibs := node.Index(), node.PrecedingSiblings()
		if idx == 0 || idx > len(sibs) {
			return false
		}
		return matchAt(chain, i-1, sibs[idx-1])
	case SubsequentSibling:
		sibs := node.PrecedingSiblings()
		for j := min(node.Index(), len(sibs)) - 1; j >= 0; j-- {
			if matchAt(chain, i-1, sibs[j]) {
				return true
			}
		}
	default:
		tracer().Errorf("fragment %d of '%s' has no combinator", i, chain)
	}
	return false
}

// matches tests the predicates of a single fragment against node.
func (f *Fragment) matches(node QueryNode) bool {
	if f.Type != "" && f.Type != "*" && f.Type != node.TypeName() {
		return false
	}
	if len(f.Classes) > 0 {
		classes := node.Classes()
		for _, c := range f.Classes {
			if !contains(classes, c) {
				return false
			}
		}
	}
	for i := range f.Pseudos {
		if !f.Pseudos[i].holds(node) {
			return false
		}
	}
	return true
}

func (p *Pseudo) holds(node QueryNode) bool {
	switch p.Kind {
	case State:
		return contains(node.ActiveStates(), p.State)
	case NthChild:
		return p.Formula.Matches(node.Index() + 1)
	case NthLastChild:
		return p.Formula.Matches(node.SiblingCount() - node.Index())
	case OnlyChild:
		return node.SiblingCount() == 1
	case Not:
		return !Matches(p.Inner, node)
	}
	return false
}

func contains(set []string, s string) bool {
	for _, x := range set {
		if x == s {
			return true
		}
	}
	return false
}
