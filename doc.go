/*
Package pwss implements cascading stylesheets for widget toolkits.

Stylesheets use a small subset of CSS syntax. Selectors address widgets by
type, class, state and position in the widget tree; properties describe
sizes, backgrounds, padding, margins, colors, fonts and layout. A host
toolkit exposes its widgets through selector.QueryNode and asks for the
resolved style of each widget during layout.

    sheet, err := pwss.LoadStylesheet(`
        button       { background: #444; padding: 4 8 }
        button:hover { background: #666 }
    `)
    ...
    rs := pwss.ResolveStyle(sheet, myButton)
    bg := rs.GetOrDefault(style.KeyBackground)

Package layout:

    style           property keys, typed values and their decoders
    style/selector  selector compiler and matcher
    style/cssom     stylesheet object model and parser
    style/cascade   resolving the style of a widget
    engine          cached, reloadable styling for hosts
    loader          loading stylesheets and resources
    tree            generic tree nodes
    widgettree      a retained widget tree implementing selector.QueryNode
    styledbg        debugging output
    maybe           optional values
    cmd/pwss        command line tool to check, dump and try out stylesheets

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pwss
