/*
Package cssom provides the object model of widget stylesheets and a parser
for their textual form.

Status

The grammar is a small subset of CSS. There are no at-rules, no ids, no
attribute selectors and no !important.

Overview

A stylesheet is a sequence of rules

    <selector>, <selector> { <property>: <value>; ... }

Parsing distinguishes two classes of errors. Errors in the structure of the
text (unterminated blocks, unbalanced parentheses, malformed selectors) are
fatal: Parse returns a *SyntaxError with line and column and no stylesheet.
Clients keep using their previous stylesheet in this case. Errors confined
to a single declaration (unknown property names, values not matching a
property's grammar) drop that declaration only; they are recorded as
diagnostics of the stylesheet.

Stylesheets are immutable. Every stylesheet carries a version, unique within
the process and increasing with every stylesheet created. Reloading a
stylesheet means creating a new one.

Tokenizing is done by the gorilla/css scanner.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwss.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("pwss.cssom")
}
