package style_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/pwss/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangleShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwss.style")
	defer teardown()
	//
	cases := []struct {
		raw  string
		want style.Rect
	}{
		{"2", style.Rect{Top: 2, Right: 2, Bottom: 2, Left: 2}},
		{"2 4", style.Rect{Top: 2, Right: 4, Bottom: 2, Left: 4}},
		{"1 2 3", style.Rect{Top: 1, Right: 2, Bottom: 3, Left: 2}},
		{"1 2 3 4", style.Rect{Top: 1, Right: 2, Bottom: 3, Left: 4}},
		{"(left: 2, top: 3)", style.Rect{Top: 3, Left: 2}},
		{"(right: 1 bottom: 0.5)", style.Rect{Right: 1, Bottom: 0.5}},
		{"-1 0", style.Rect{Top: -1, Bottom: -1}},
	}
	for _, c := range cases {
		v, err := style.Decode(style.KeyPadding, c.raw)
		require.NoError(t, err, c.raw)
		assert.Equal(t, c.want, v, c.raw)
	}
}

func TestRectangleErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwss.style")
	defer teardown()
	//
	for _, raw := range []string{"1 2 3 4 5", "1px", "(middle: 2)", "(left 2)", "none"} {
		_, err := style.Decode(style.KeyMargin, raw)
		var vpe *style.ValueParseError
		if !errors.As(err, &vpe) {
			t.Errorf("expected %q to be rejected with a value parse error, isn't: %v", raw, err)
			continue
		}
		if vpe.Property != "margin" {
			t.Errorf("expected error to name property margin, names %q", vpe.Property)
		}
	}
}

func TestSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwss.style")
	defer teardown()
	//
	cases := map[string]style.Size{
		"12":        style.Exact(12),
		"exact(30)": style.Exact(30),
		"fill(2)":   style.Fill(2),
		"shrink":    style.Shrink(),
		"SHRINK":    style.Shrink(),
	}
	for raw, want := range cases {
		v, err := style.Decode(style.KeyWidth, raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, v, raw)
	}
	for _, raw := range []string{"fill(1.5)", "fill(", "fill(2", "grow", ""} {
		_, err := style.Decode(style.KeyHeight, raw)
		assert.Error(t, err, raw)
	}
}

func TestSizeMatch(t *testing.T) {
	var n float32
	var w int
	switch m := style.Exact(10).Match(); m {
	case m.Exact(&n):
		t.Logf("n = %v", n)
	default:
		t.Errorf("expected Exact(10) to match exact, doesn't")
	}
	if n != 10 {
		t.Errorf("expected n = 10, is %v", n)
	}
	switch m := style.Fill(3).Match(); m {
	case m.Exact(nil):
		t.Errorf("expected Fill(3) not to match exact, does")
	case m.Fill(&w):
	}
	if w != 3 {
		t.Errorf("expected weight 3, is %d", w)
	}
	e := style.SizePattern[string](style.Shrink())
	policy := e.OneOf(style.SizePatterns[string]{
		Exact:  "fixed",
		Fill:   "stretch",
		Shrink: "content",
	})
	if policy != "content" {
		t.Errorf("expected shrink to select 'content', selected %q", policy)
	}
}

func TestColors(t *testing.T) {
	cases := map[string]style.Color{
		"#fff":      style.White,
		"#f00":      {0xff, 0, 0, 0xff},
		"#f008":     {0xff, 0, 0, 0x88},
		"#123456":   {0x12, 0x34, 0x56, 0xff},
		"#12345678": {0x12, 0x34, 0x56, 0x78},
	}
	for raw, want := range cases {
		v, err := style.Decode(style.KeyColor, raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, v, raw)
	}
	for _, raw := range []string{"#12", "#12345", "#ggg", "red", "#1234567890"} {
		_, err := style.Decode(style.KeyColor, raw)
		assert.Error(t, err, raw)
	}
	r, g, b, a := style.Color{0xff, 0, 0, 0x80}.RGBA()
	assert.Equal(t, uint32(0x8080), r) // premultiplied
	assert.Equal(t, uint32(0), g+b)
	assert.Equal(t, uint32(0x8080), a)
}

func TestBackgrounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwss.style")
	defer teardown()
	//
	red := style.Color{0xff, 0, 0, 0xff}
	cases := map[string]style.Background{
		`none`:                          style.NoBackground(),
		`#f00`:                          style.ColorBackground(red),
		`"panel.png"`:                   style.ImageBackground("panel.png", style.White),
		`url(panel.png)`:                style.ImageBackground("panel.png", style.White),
		`"icon.9.png"`:                  style.PatchBackground("icon.9.png", style.White),
		`url('icon.9.png')`:             style.PatchBackground("icon.9.png", style.White),
		`image("a.png", #f00)`:          style.ImageBackground("a.png", red),
		`patch("button.png", #ff0000)`:  style.PatchBackground("button.png", red),
		`image( "a.9.png" , #f00 )`:     style.ImageBackground("a.9.png", red),
		`patch(url(frame.png), #ff0000)`: style.PatchBackground("frame.png", red),
	}
	for raw, want := range cases {
		v, err := style.Decode(style.KeyBackground, raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, v, raw)
	}
	for _, raw := range []string{`image("a.png")`, `patch(#fff, "a.png")`, `gradient(1)`, `"a.png" #fff`} {
		_, err := style.Decode(style.KeyBackground, raw)
		assert.Error(t, err, raw)
	}
}

func TestNinePatchEqualsExplicitPatch(t *testing.T) {
	auto, err := style.Decode(style.KeyBackground, `"icon.9.png"`)
	require.NoError(t, err)
	explicit, err := style.Decode(style.KeyBackground, `patch("icon.9.png", #fff)`)
	require.NoError(t, err)
	if auto != explicit {
		t.Errorf("expected nine-patch url to equal explicit patch, is %v vs %v", auto, explicit)
	}
}

func TestEnums(t *testing.T) {
	cases := []struct {
		name, raw string
		want      style.Value
	}{
		{"text_wrap", "word-wrap", style.WordWrap},
		{"text-wrap", "no-wrap", style.NoWrap},
		{"layout-direction", "top-to-bottom", style.TopToBottom},
		{"layout_direction", "right-to-left", style.RightToLeft},
		{"align_horizontal", "center", style.AlignCenter},
		{"align-vertical", "bottom", style.AlignEnd},
		{"align_vertical", "top", style.AlignBegin},
		{"text_size", "12.5", style.Number(12.5)},
		{"padding-left", "3", style.Number(3)},
		{"font", `"fonts/sans.ttf"`, style.Resource("fonts/sans.ttf")},
	}
	for _, c := range cases {
		kv, err := style.DecodeNamed(c.name, c.raw)
		require.NoError(t, err, c.name)
		assert.Equal(t, c.want, kv.Value, c.name)
	}
	_, err := style.DecodeNamed("text_wrap", "hyphenate")
	assert.Error(t, err)
}

func TestUnknownProperty(t *testing.T) {
	_, err := style.DecodeNamed("border", "1")
	var upe *style.UnknownPropertyError
	if !errors.As(err, &upe) {
		t.Fatalf("expected unknown property error, have %v", err)
	}
	if upe.Name != "border" {
		t.Errorf("expected error to name 'border', names %q", upe.Name)
	}
}

func TestLonghands(t *testing.T) {
	kvs := style.Longhands(style.KeyValue{Key: style.KeyMargin, Value: style.Rect{Top: 1, Right: 2, Bottom: 3, Left: 4}})
	require.Len(t, kvs, 4)
	assert.Equal(t, style.KeyValue{Key: style.KeyMarginTop, Value: style.Number(1)}, kvs[0])
	assert.Equal(t, style.KeyValue{Key: style.KeyMarginLeft, Value: style.Number(4)}, kvs[3])
	single := style.Longhands(style.KeyValue{Key: style.KeyColor, Value: style.White})
	assert.Len(t, single, 1)
}

func TestDefaults(t *testing.T) {
	for _, k := range style.Keys() {
		if style.Default(k) == nil {
			t.Errorf("expected property %s to have a default, hasn't", k)
		}
	}
	assert.Equal(t, style.Number(16), style.Default(style.KeyTextSize))
	assert.Equal(t, style.White, style.Default(style.KeyColor))
	assert.Equal(t, style.PGMargins, style.GroupNameFromPropertyKey(style.KeyMarginTop))
}
