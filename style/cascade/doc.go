/*
Package cascade computes the style of a single widget from a stylesheet.

Overview

Resolving collects the rules whose selector matches the widget and orders
them by ascending specificity; rules of equal specificity keep their order
in the stylesheet. Declarations are then applied in this order, so for each
property the last writer wins:

    button       { background: #444 }   // (0,0,1), rule 0
    button:hover { background: #666 }   // (1,0,1), rule 1

A hovered button ends up with #666, regardless of the order of the two
rules in the source.

Shorthand properties (padding, margin) are split into their sides while
applying, so that a later "padding-left" partially overrides an earlier
"padding". Asking a resolved style for a shorthand composes it again.

There is no inheritance between widgets. Properties not set by any rule are
absent; Default in package style documents what clients should assume.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwss.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("pwss.cascade")
}
