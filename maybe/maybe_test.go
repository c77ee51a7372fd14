package maybe_test

import (
	"testing"

	. "github.com/npillmayer/pwss/maybe"
	"github.com/npillmayer/pwss/style"
	"github.com/stretchr/testify/assert"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeStyleValue(t *testing.T) {
	x := Just[style.Value](style.Number(12))
	var v style.Value
	switch m := x.Match(); m {
	case m.Just(&v):
	case m.Nothing():
		t.Error("expected Just(12) to match Just, didn't")
	}
	assert.Equal(t, style.Number(12), v)

	bg, ok := Just[style.Value](style.ColorBackground(style.Black)).Get()
	assert.True(t, ok)
	assert.Equal(t, style.BackgroundColor, bg.(style.Background).Kind)
	assert.True(t, Nothing[style.Value]().IsNothing())
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	if xx := x.WithDefault(100); xx != 7 {
		t.Errorf("expected Just(7) to have value 7, has %d", xx)
	}
	y := Nothing[int]()
	if yy := y.WithDefault(100); yy != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", yy)
	}
	assert.Equal(t, 5, Of(5, true).WithDefault(0))
	assert.True(t, Of(5, false).IsNothing())
}

func TestMaybeMap(t *testing.T) {
	x := Just(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	var v int
	switch m := xx.Match(); m {
	case m.Just(&v):
	case m.Nothing():
	}
	if v != 14 {
		t.Errorf("expected Just(7).Map(…) to return 14, is %d", v)
	}

	y := Nothing[int]()
	yy := y.Map(func(n int) int {
		return n * 2
	})
	var w int
	switch m := yy.Match(); m {
	case m.Just(&w):
	case m.Nothing():
		w = 99
	}
	if w != 99 {
		t.Errorf("expected Nothing.Map(…) to return 99, is %d", w)
	}

	size := Convert(func(n int) style.Size { return style.Fill(n) }, Just(2))
	s, ok := size.Get()
	assert.True(t, ok)
	assert.Equal(t, style.Fill(2), s)
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}

	gt := AndThen(gt0, Just(7))
	var isGreater bool
	switch m := gt.Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if !AndThen(gt0, Just(-1)).IsNothing() {
		t.Error("expected Just(-1) |> andThen(gt0) to be Nothing, isn't")
	}
}
