package selector

import (
	"strings"
)

// Combinator describes the relationship of a fragment to its left neighbour.
type Combinator uint8

// Combinators. The first fragment of a chain has combinator None.
const (
	None Combinator = iota
	Descendant
	Child
	NextSibling
	SubsequentSibling
)

func (c Combinator) String() string {
	switch c {
	case Descendant:
		return " "
	case Child:
		return " > "
	case NextSibling:
		return " + "
	case SubsequentSibling:
		return " ~ "
	}
	return ""
}

// PseudoKind tells the variants of Pseudo apart.
type PseudoKind uint8

// Kinds of pseudo classes.
const (
	State PseudoKind = iota
	NthChild
	NthLastChild
	OnlyChild
	Not
)

// Pseudo is a pseudo class predicate of a fragment.
type Pseudo struct {
	Kind    PseudoKind
	State   string  // for kind State
	Formula Formula // for kinds NthChild and NthLastChild
	Inner   Chain   // for kind Not
}

func (p Pseudo) String() string {
	switch p.Kind {
	case NthChild:
		return ":nth-child(" + p.Formula.String() + ")"
	case NthLastChild:
		return ":nth-last-child(" + p.Formula.String() + ")"
	case OnlyChild:
		return ":only-child"
	case Not:
		return ":not(" + p.Inner.String() + ")"
	}
	return ":" + p.State
}

// Fragment tests a single widget. An empty Type or "*" matches any widget
// type. Classes and pseudo classes are conjunctive.
type Fragment struct {
	Combinator Combinator
	Type       string
	Classes    []string
	Pseudos    []Pseudo
}

func (f Fragment) isEmpty() bool {
	return f.Type == "" && len(f.Classes) == 0 && len(f.Pseudos) == 0
}

func (f Fragment) String() string {
	var b strings.Builder
	if f.isEmpty() {
		b.WriteString("*")
	} else {
		b.WriteString(f.Type)
	}
	for _, c := range f.Classes {
		b.WriteString("." + c)
	}
	for _, p := range f.Pseudos {
		b.WriteString(p.String())
	}
	return b.String()
}

// Chain is a compiled selector. Fragments are in source order; the last
// fragment applies to the queried widget itself.
type Chain []Fragment

func (c Chain) String() string {
	var b strings.Builder
	for i, f := range c {
		if i > 0 {
			b.WriteString(f.Combinator.String())
		}
		b.WriteString(f.String())
	}
	return b.String()
}

// Specificity computes the weight of a chain. It depends on the shape of
// the chain only: each pseudo class (including :not, regardless of its
// argument) counts as a pseudo, each class as a class, and each type other
// than the universal type as a type.
func (c Chain) Specificity() Specificity {
	var s Specificity
	for _, f := range c {
		s.Pseudo += len(f.Pseudos)
		s.Class += len(f.Classes)
		if f.Type != "" && f.Type != "*" {
			s.Type++
		}
	}
	return s
}
