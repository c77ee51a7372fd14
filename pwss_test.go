package pwss_test

import (
	"testing"

	"github.com/npillmayer/pwss"
	"github.com/npillmayer/pwss/style"
	"github.com/npillmayer/pwss/widgettree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndResolve(t *testing.T) {
	sheet, err := pwss.LoadStylesheet(`
		button       { background: #444; padding: 4 8 }
		button:hover { background: #666 }
		.fancy > text { color: #f00 }
		text { background: "img/frame.9.png" }
	`)
	require.NoError(t, err)
	btn, txt := widgettree.New("button"), widgettree.New("text")
	widgettree.New("column", "fancy").Add(btn, txt)
	//
	rs := pwss.ResolveStyle(sheet, btn)
	assert.Equal(t, style.Rect{Top: 4, Right: 8, Bottom: 4, Left: 8}, rs.GetOrDefault(style.KeyPadding))
	btn.SetState("hover", true)
	rs = pwss.ResolveStyle(sheet, btn)
	assert.Equal(t, "#666666ff", rs.GetOrDefault(style.KeyBackground).(style.Background).Color.String())
	//
	rs = pwss.ResolveStyle(sheet, txt)
	assert.Equal(t, style.Color{R: 0xff, A: 0xff}, rs.GetOrDefault(style.KeyColor))
	bg := rs.GetOrDefault(style.KeyBackground).(style.Background)
	assert.Equal(t, style.PatchBackground("img/frame.9.png", style.White), bg)
	//
	_, err = pwss.LoadStylesheet("button { background: #444")
	assert.Error(t, err)
}
