package cssom

import (
	"errors"
	"testing"

	"github.com/npillmayer/pwss/style"
	"github.com/npillmayer/pwss/style/selector"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

const fancy = `
/* a small sheet */
button {
    background: #444;
    padding: 4 8;
}
button:hover { background: #666 }
.fancy > text, .fancy > button {
    color: #ff0000;
    font: "fonts/serif.ttf";
}
panel { background: url(img/frame.9.png); }
`

func TestParseSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwss.cssom")
	defer teardown()
	//
	sheet, err := Parse(fancy)
	require.NoError(t, err)
	require.NoError(t, sheet.Err())
	require.Equal(t, 5, sheet.Len(), "selector list should yield one rule per selector")
	for i, r := range sheet.Rules() {
		assert.Equal(t, i, r.Index)
	}
	r := sheet.Rule(0)
	assert.Equal(t, 3, r.Line)
	assert.Equal(t, selector.Specificity{Type: 1}, r.Specificity)
	require.Len(t, r.Declarations, 2)
	assert.Equal(t, style.KeyBackground, r.Declarations[0].Key)
	assert.Equal(t, style.ColorBackground(style.Color{R: 0x44, G: 0x44, B: 0x44, A: 0xff}), r.Declarations[0].Value)
	assert.Equal(t, style.Rect{Top: 4, Right: 8, Bottom: 4, Left: 8}, r.Declarations[1].Value)
	//
	assert.Equal(t, "button:hover", sheet.Rule(1).Selector.String())
	assert.Equal(t, ".fancy > text", sheet.Rule(2).Selector.String())
	assert.Equal(t, ".fancy > button", sheet.Rule(3).Selector.String())
	assert.Equal(t, sheet.Rule(2).Declarations, sheet.Rule(3).Declarations)
	assert.Equal(t, []style.Resource{"fonts/serif.ttf", "img/frame.9.png"}, sheet.Resources())
	bg := sheet.Rule(4).Declarations[0].Value.(style.Background)
	assert.Equal(t, style.BackgroundPatch, bg.Kind)
}

func TestParseEmpty(t *testing.T) {
	for _, src := range []string{"", "   \n\t", "/* nothing */", "<!-- -->"} {
		sheet, err := Parse(src)
		require.NoError(t, err, "source %q", src)
		assert.True(t, sheet.Empty())
	}
}

func TestVersionsIncrease(t *testing.T) {
	a, err := Parse("text { color: #fff }")
	require.NoError(t, err)
	b, err := Parse("text { color: #fff }")
	require.NoError(t, err)
	assert.Greater(t, b.Version(), a.Version())
	var none *StyleSheet
	assert.Equal(t, uint64(0), none.Version())
	assert.True(t, none.Empty())
}

func TestSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwss.cssom")
	defer teardown()
	//
	for _, tc := range []struct {
		src  string
		line int
	}{
		{"button { color: #fff", 1},
		{"button\n{ color: #fff; }\n}", 3},
		{"button color: #fff; }", 1},
		{"button {\n  color #fff;\n}", 2},
		{"button {\n  color: #fff;\n  ;42: 3;\n}", 3},
		{"@import 'x.css';", 1},
		{"button > { color: #fff }", 1},
		{"#main { color: #fff }", 1},
		{"\n\nbutton, { color: #fff }", 3},
		{"button { padding: (1 2; }", 1},
		{"button { padding: 1 2); }", 1},
		{"button { color: { }", 1},
	} {
		sheet, err := Parse(tc.src)
		if err == nil {
			t.Errorf("expected %q to be rejected, has %d rules", tc.src, sheet.Len())
			continue
		}
		var serr *SyntaxError
		if assert.ErrorAs(t, err, &serr, "source %q", tc.src) {
			assert.Equal(t, tc.line, serr.Line, "line of error in %q: %v", tc.src, err)
			assert.Greater(t, serr.Column, 0)
		}
	}
}

func TestDeclarationDiagnostics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwss.cssom")
	defer teardown()
	//
	src := `button {
    colour: #fff;
    background: #444;
    padding: 1 2 3 4 5;
    text_size: 12;
}`
	sheet, err := Parse(src)
	require.NoError(t, err)
	require.Equal(t, 1, sheet.Len())
	decls := sheet.Rule(0).Declarations
	require.Len(t, decls, 2, "bad declarations should be dropped, good ones kept")
	assert.Equal(t, style.KeyBackground, decls[0].Key)
	assert.Equal(t, style.KeyTextSize, decls[1].Key)
	assert.Equal(t, style.Number(12), decls[1].Value)
	//
	diags := sheet.Diagnostics()
	require.Len(t, diags, 2)
	assert.Equal(t, 2, diags[0].Line)
	assert.Equal(t, 4, diags[1].Line)
	var unknown *style.UnknownPropertyError
	require.True(t, errors.As(diags[0], &unknown))
	assert.Equal(t, "colour", unknown.Name)
	var bad *style.ValueParseError
	require.True(t, errors.As(diags[1], &bad))
	assert.Equal(t, "padding", bad.Property)
	assert.Len(t, multierr.Errors(sheet.Err()), 2)
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwss.cssom")
	defer teardown()
	//
	base, err := Parse("button { background: #444 }")
	require.NoError(t, err)
	b := NewBuilder().
		Append(base).
		Add("button:hover", style.KeyValue{Key: style.KeyBackground, Value: style.ColorBackground(style.White)}).
		Set("text", "color", "#00f").
		Set("text", "colour", "#00f")
	sheet, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 4, sheet.Len())
	assert.Equal(t, 3, sheet.Rule(3).Index)
	assert.Empty(t, sheet.Rule(3).Declarations)
	assert.Len(t, sheet.Diagnostics(), 1)
	assert.Greater(t, sheet.Version(), base.Version())
	assert.Equal(t, 0, base.Rule(0).Index, "appended sheet must not change")
	//
	_, err = NewBuilder().Add("text >").Add("button").Build()
	var serr *selector.Error
	assert.ErrorAs(t, err, &serr)
	//
	merged := Merge(base, sheet)
	assert.Equal(t, 5, merged.Len())
	assert.Equal(t, 4, merged.Rule(4).Index)
}
