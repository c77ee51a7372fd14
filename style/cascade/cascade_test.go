package cascade_test

import (
	"testing"

	"github.com/npillmayer/pwss/style"
	"github.com/npillmayer/pwss/style/cascade"
	"github.com/npillmayer/pwss/style/cssom"
	"github.com/npillmayer/pwss/style/selector"
	"github.com/npillmayer/pwss/widgettree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gray(n uint8) style.Background {
	return style.ColorBackground(style.Color{R: n, G: n, B: n, A: 0xff})
}

func parse(t *testing.T, src string) *cssom.StyleSheet {
	t.Helper()
	sheet, err := cssom.Parse(src)
	require.NoError(t, err)
	require.NoError(t, sheet.Err())
	return sheet
}

func TestHoverWinsBySpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwss.cascade")
	defer teardown()
	//
	for _, src := range []string{
		"button { background: #444 } button:hover { background: #666 }",
		"button:hover { background: #666 } button { background: #444 }",
	} {
		sheet := parse(t, src)
		btn := widgettree.New("button")
		rs := cascade.Resolve(sheet, btn)
		assert.Equal(t, gray(0x44), rs.GetOrDefault(style.KeyBackground))
		btn.SetState(selector.Hover, true)
		rs = cascade.Resolve(sheet, btn)
		assert.Equal(t, gray(0x66), rs.GetOrDefault(style.KeyBackground), "source: %s", src)
		assert.Len(t, rs.Rules(), 2)
		assert.Equal(t, sheet.Version(), rs.Version())
	}
}

func TestLaterRuleWinsOnEqualSpecificity(t *testing.T) {
	sheet := parse(t, `
		.primary { color: #f00 }
		.big     { color: #0f0 }
		.primary { text_size: 20 }
	`)
	w := widgettree.New("button", "primary", "big")
	rs := cascade.Resolve(sheet, w)
	assert.Equal(t, style.Color{R: 0, G: 0xff, B: 0, A: 0xff}, rs.GetOrDefault(style.KeyColor))
	assert.Equal(t, style.Number(20), rs.GetOrDefault(style.KeyTextSize))
	assert.Equal(t, []int{0, 1, 2}, rs.Rules())
}

func TestLastDeclarationInRuleWins(t *testing.T) {
	sheet := parse(t, "text { color: #111; color: #222 }")
	rs := cascade.Resolve(sheet, widgettree.New("text"))
	c, ok := rs.Lookup(style.KeyColor)
	require.True(t, ok)
	assert.Equal(t, "#222222ff", c.String())
}

func TestShorthandsAndLonghands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwss.cascade")
	defer teardown()
	//
	sheet := parse(t, `
		.wide text { padding-left: 20 }
		text       { padding: 1 2 3; margin-top: 5 }
	`)
	txt := widgettree.New("text")
	widgettree.New("column", "wide").Add(txt)
	rs := cascade.Resolve(sheet, txt)
	assert.Equal(t, style.Rect{Top: 1, Right: 2, Bottom: 3, Left: 20}, rs.GetOrDefault(style.KeyPadding))
	assert.Equal(t, style.Number(20), rs.GetOrDefault(style.KeyPaddingLeft))
	assert.Equal(t, style.Rect{Top: 5}, rs.GetOrDefault(style.KeyMargin))
	assert.NotContains(t, rs.Keys(), style.KeyPadding)
	assert.Contains(t, rs.Keys(), style.KeyPaddingTop)
	//
	plain := cascade.Resolve(sheet, widgettree.New("button"))
	assert.True(t, plain.Get(style.KeyPadding).IsNothing())
	assert.Equal(t, style.Rect{}, plain.GetOrDefault(style.KeyPadding))
}

func TestNoMatchIsEmpty(t *testing.T) {
	sheet := parse(t, "button { width: fill(1) }")
	rs := cascade.Resolve(sheet, widgettree.New("text"))
	assert.Equal(t, 0, rs.Len())
	assert.Empty(t, rs.Rules())
	var v style.Value
	switch m := rs.Get(style.KeyWidth).Match(); m {
	case m.Just(&v):
		t.Errorf("expected width of text to be unset, is %v", v)
	case m.Nothing():
	}
	assert.Equal(t, style.Shrink(), rs.GetOrDefault(style.KeyWidth))
	//
	empty := cascade.Resolve(nil, widgettree.New("text"))
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, uint64(0), empty.Version())
}

func TestStructuralRules(t *testing.T) {
	sheet := parse(t, `
		column > *:nth-child(odd) { background: #111 }
		column > text:last-child  { align_horizontal: center }
		text + button              { width: 100 }
	`)
	a, b, c := widgettree.New("text"), widgettree.New("button"), widgettree.New("text")
	widgettree.New("column").Add(a, b, c)
	assert.Equal(t, gray(0x11), cascade.Resolve(sheet, a).GetOrDefault(style.KeyBackground))
	assert.Equal(t, style.NoBackground(), cascade.Resolve(sheet, b).GetOrDefault(style.KeyBackground))
	assert.Equal(t, style.Exact(100), cascade.Resolve(sheet, b).GetOrDefault(style.KeyWidth))
	rc := cascade.Resolve(sheet, c)
	assert.Equal(t, style.AlignCenter, rc.GetOrDefault(style.KeyAlignHorizontal))
	assert.Equal(t, gray(0x11), rc.GetOrDefault(style.KeyBackground))
}

func TestEqualIgnoresVersion(t *testing.T) {
	src := "text { color: #abc }"
	s1, s2 := parse(t, src), parse(t, src)
	w := widgettree.New("text")
	r1, r2 := cascade.Resolve(s1, w), cascade.Resolve(s2, w)
	assert.NotEqual(t, r1.Version(), r2.Version())
	assert.True(t, r1.Equal(r2))
	assert.False(t, r1.Equal(cascade.Resolve(s1, widgettree.New("button"))))
}
