package style

// Built-in defaults are not part of any resolved style. A resolved style
// holds only what rules set explicitly; layout and rendering code treat an
// absent property as its default:
//
//    width, height          shrink
//    background,
//    scrollbar-*            none
//    padding, margin        0 on every side
//    font                   no resource (the host's built-in font)
//    color                  white
//    text_size              16
//    text_wrap              no-wrap
//    layout-direction       left-to-right
//    align_*                begin
var defaults = [keyCount]Value{
	KeyWidth:               Shrink(),
	KeyHeight:              Shrink(),
	KeyBackground:          NoBackground(),
	KeyScrollbarHorizontal: NoBackground(),
	KeyScrollbarVertical:   NoBackground(),
	KeyPadding:             Rect{},
	KeyPaddingTop:          Number(0),
	KeyPaddingRight:        Number(0),
	KeyPaddingBottom:       Number(0),
	KeyPaddingLeft:         Number(0),
	KeyMargin:              Rect{},
	KeyMarginTop:           Number(0),
	KeyMarginRight:         Number(0),
	KeyMarginBottom:        Number(0),
	KeyMarginLeft:          Number(0),
	KeyFont:                NoResource,
	KeyColor:               White,
	KeyTextSize:            Number(16),
	KeyTextWrap:            NoWrap,
	KeyLayoutDirection:     LeftToRight,
	KeyAlignHorizontal:     AlignBegin,
	KeyAlignVertical:       AlignBegin,
}

// Default returns the built-in default value for a property key, or nil for
// invalid keys.
func Default(key Key) Value {
	if key >= keyCount {
		return nil
	}
	return defaults[key]
}
