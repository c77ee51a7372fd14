/*
Package engine provides the style engine used by hosts at runtime.

An engine owns the stylesheet currently in effect and a cache of resolved
styles. Widgets are styled by calling Style, typically from the layout pass
of a toolkit, possibly from several goroutines at once.

Caching

Styles are cached by a fingerprint of the widget: its type, classes, active
states and position, plus the same for its preceding siblings and for all
of its ancestors. These are exactly the facts selectors may inspect, so
equal fingerprints imply equal styles. Widgets in repeated structures (list
items, table cells) therefore share cache entries.

A cache belongs to one stylesheet version. Installing a new stylesheet
installs a new, empty cache in the same atomic step; a Style call in flight
finishes with the version it started with.

Reloading

Load and Replace install new stylesheets explicitly. Watch follows a file
through a loader and reloads it on change. A stylesheet failing to parse is
never installed; the engine keeps styling with the last good one.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwss.engine'.
func tracer() tracing.Trace {
	return tracing.Select("pwss.engine")
}
