/*
Package widgettree is a straightforward retained widget tree.

Overview

Widgets have a type name, a set of classes and a set of active states, and
are arranged in a tree. Every widget implements selector.QueryNode, so trees
built with this package may be styled directly. Hosts with their own widget
types implement selector.QueryNode on them instead.

Trees may be built programmatically or read from YAML:

    type: window
    children:
      - type: column
        classes: [fancy]
        children:
          - type: text
          - type: button
            states: [hover]

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package widgettree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwss.widgets'.
func tracer() tracing.Trace {
	return tracing.Select("pwss.widgets")
}
