/*
Package styledbg implements helpers to debug stylesheets and styled widget
trees.

Trees are printed with treeprint, suitable for test logs and the terminal.
ToGraphViz writes a styled widget tree in GraphViz (DOT) format, with the
resolved properties of each widget attached as property group tables.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/pwss/style"
	"github.com/npillmayer/pwss/style/cascade"
	"github.com/npillmayer/pwss/style/cssom"
	"github.com/npillmayer/pwss/style/selector"
	"github.com/npillmayer/pwss/widgettree"
	tp "github.com/xlab/treeprint"
)

// Styler resolves the style of a widget. *engine.Engine is a Styler.
type Styler interface {
	Style(selector.QueryNode) *cascade.ResolvedStyle
}

// SheetStyler styles widgets directly from a stylesheet, without caching.
type SheetStyler struct {
	Sheet *cssom.StyleSheet
}

// Style resolves the style of node.
func (s SheetStyler) Style(node selector.QueryNode) *cascade.ResolvedStyle {
	return cascade.Resolve(s.Sheet, node)
}

// --- Tree printing ----------------------------------------------------

// PrintSheet prints the rules of a stylesheet as a tree, one branch per rule.
func PrintSheet(sheet *cssom.StyleSheet) string {
	header := fmt.Sprintf("stylesheet v%d\n", sheet.Version())
	p := tp.New()
	for _, r := range sheet.Rules() {
		branch := p.AddMetaBranch(r.Specificity.String(), fmt.Sprintf("#%d %s", r.Index, r.Selector))
		for _, kv := range r.Declarations {
			branch.AddNode(kv.String())
		}
	}
	if d := sheet.Diagnostics(); len(d) > 0 {
		diags := p.AddBranch("diagnostics")
		for _, diag := range d {
			diags.AddNode(diag.Error())
		}
	}
	return header + p.String()
}

// PrintStyledTree prints a widget tree, listing the resolved properties of
// every widget grouped by property group.
func PrintStyledTree(root *widgettree.Widget, styler Styler) string {
	p := tp.New()
	printWidget(p, root, styler)
	return p.String()
}

func printWidget(p tp.Tree, w *widgettree.Widget, styler Styler) {
	rs := styler.Style(w)
	branch := p.AddMetaBranch(ruleList(rs), w.Label())
	for _, g := range Groups(rs) {
		gb := branch.AddBranch(g.Name)
		for _, kv := range g.Properties {
			gb.AddNode(kv.String())
		}
	}
	for _, ch := range w.Children() {
		printWidget(branch, ch, styler)
	}
}

func ruleList(rs *cascade.ResolvedStyle) string {
	rules := rs.Rules()
	if len(rules) == 0 {
		return "-"
	}
	s := make([]string, len(rules))
	for i, r := range rules {
		s[i] = fmt.Sprintf("#%d", r)
	}
	return strings.Join(s, " ")
}

// PropertyGroup is a named set of resolved properties.
type PropertyGroup struct {
	Name       string
	Properties []style.KeyValue
}

// Groups splits up the properties of a resolved style into property groups,
// ordered by their first key. Groups without properties are omitted.
func Groups(rs *cascade.ResolvedStyle) []PropertyGroup {
	var groups []PropertyGroup
	at := make(map[string]int)
	for _, kv := range rs.Declarations() {
		name := style.GroupNameFromPropertyKey(kv.Key)
		i, ok := at[name]
		if !ok {
			i = len(groups)
			at[name] = i
			groups = append(groups, PropertyGroup{Name: name})
		}
		groups[i].Properties = append(groups[i].Properties, kv)
	}
	return groups
}

// --- GraphViz ---------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
}

// ToGraphViz outputs a diagram for a styled widget tree in GraphViz (DOT)
// format.
func ToGraphViz(root *widgettree.Widget, styler Styler, w io.Writer) error {
	tmpl, err := template.New("widgets").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("widget").Parse(widgetNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("widgetedge").Parse(widgetEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*widgettree.Widget]string, 256)
	if err = nodes(root, styler, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a widget tree and a testing.T, it will
// create a Graphviz image of the styled tree and write it to a file in the
// current folder, choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root *widgettree.Widget, styler Styler, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "widgets.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing widget digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(root, styler, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing widget tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	W    *widgettree.Widget
	Name string
}

type pgnode struct {
	Name  string
	Group PropertyGroup
}

type edge struct {
	From, To string
}

func nodes(w *widgettree.Widget, styler Styler, out io.Writer, dict map[*widgettree.Widget]string,
	gparams *graphParamsType) error {
	//
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[w] = name
	if err := gparams.NodeTmpl.Execute(out, &node{w, name}); err != nil {
		return err
	}
	prev := name
	for i, g := range Groups(styler.Style(w)) {
		pg := pgnode{Name: fmt.Sprintf("%s_pg%d", name, i), Group: g}
		if err := gparams.StylegroupTmpl.Execute(out, pg); err != nil {
			return err
		}
		if err := gparams.PgedgeTmpl.Execute(out, edge{prev, pg.Name}); err != nil {
			return err
		}
		prev = pg.Name
	}
	for _, ch := range w.Children() {
		if err := nodes(ch, styler, out, dict, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(out, edge{name, dict[ch]}); err != nil {
			return err
		}
	}
	return nil
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "helvetica" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const widgetNodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .W.Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const styleGroupTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Group.Name }}</font></td></tr>
      {{ range .Group.Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const widgetEdgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .From }} -> {{ .To }} [dir=none weight=1 style="dashed"] ;
`
