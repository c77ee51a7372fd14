package widgettree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwss.widgets")
	defer teardown()
	//
	a, b, c := New("text"), New("button"), New("text")
	root := New("column").Add(a, b, c)
	if root.Index() != 0 || root.SiblingCount() != 1 {
		t.Errorf("expected root to be an only child at index 0, is %d/%d", root.Index(), root.SiblingCount())
	}
	if root.Parent() != nil {
		t.Error("expected root to have an untyped nil parent, hasn't")
	}
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, 3, c.SiblingCount())
	sibs := c.PrecedingSiblings()
	require.Len(t, sibs, 2)
	assert.Same(t, a, sibs[0])
	assert.Same(t, b, sibs[1])
	assert.Empty(t, a.PrecedingSiblings())
	b.Remove()
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, 2, c.SiblingCount())
}

func TestClassesAndStates(t *testing.T) {
	w := New("button", "primary", "big", "primary")
	assert.Equal(t, []string{"big", "primary"}, w.Classes())
	w.SetState("pressed", true)
	w.SetState("hover", true)
	w.SetState("hover", true)
	assert.Equal(t, []string{"hover", "pressed"}, w.ActiveStates())
	w.SetState("pressed", false)
	assert.Equal(t, []string{"hover"}, w.ActiveStates())
	w.SetClass("big", false)
	assert.Equal(t, "button.primary:hover", w.Label())
}

func TestPath(t *testing.T) {
	btn := New("button")
	New("window").Add(New("column", "fancy").Add(btn))
	btn.SetState("hover", true)
	if p := btn.Path(); p != "window > column.fancy > button:hover" {
		t.Errorf("expected path of button to show ancestors, is %q", p)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	src := `
type: window
children:
  - type: column
    classes: [fancy]
    children:
      - type: text
      - type: button
        states: [hover]
`
	root, err := ReadYAML(strings.NewReader(src))
	require.NoError(t, err)
	var n int
	root.Walk(func(w *Widget, depth int) {
		n++
	})
	assert.Equal(t, 4, n)
	btn := root.Children()[0].Children()[1]
	assert.Equal(t, "window > column.fancy > button:hover", btn.Path())
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, root))
	again, err := ReadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, SpecOf(root), SpecOf(again))

	_, err = ReadYAML(strings.NewReader("children: [{type: text}]"))
	assert.Error(t, err)
}
