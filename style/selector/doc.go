/*
Package selector compiles and matches the selectors of widget stylesheets.

Overview

A selector chain is a sequence of fragments joined by combinators:

    window .fancy > text:nth-child(odd):not(.hidden)

Each fragment tests a single widget for its type, its classes and its
pseudo classes. Combinators relate neighbouring fragments: ' ' (descendant),
'>' (child), '+' (next sibling) and '~' (subsequent sibling).

Chains are matched right to left: the rightmost fragment has to match the
queried widget itself, the combinator stored with it tells where to look
for a match of the fragment to its left. Matching is a pure function of the
chain and the widget's view as a QueryNode; no state survives a call to
Matches.

Pseudo classes are :only-child, :first-child, :last-child,
:nth-child(f), :nth-last-child(f), :not(selector), and states like :hover.
Any identifier not reserved for a structural pseudo class names a state.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwss.selector'.
func tracer() tracing.Trace {
	return tracing.Select("pwss.selector")
}
