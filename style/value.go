package style

import (
	"strconv"
)

// Value is a typed property value. The set of value types is closed:
// Size, Background, Rect, Number, Resource, Color, TextWrap, Direction
// and Align. All of them are comparable with ==.
type Value interface {
	String() string
	isValue()
}

// Number is a plain unitless number, e.g. for text_size or for a single
// side of a padding.
type Number float32

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 32)
}

// Resource is an opaque identifier for an external resource (font or image),
// as written in a url value. Resources are never loaded by this package.
type Resource string

// NoResource denotes an unset resource; clients substitute their built-in
// resource, e.g. a default font.
const NoResource Resource = ""

func (r Resource) String() string {
	return strconv.Quote(string(r))
}

// IsNinePatch is true for image urls which should be rendered as nine-patch
// images by convention, i.e. which end with ".9.png".
func (r Resource) IsNinePatch() bool {
	return len(r) >= len(ninePatchSuffix) && string(r[len(r)-len(ninePatchSuffix):]) == ninePatchSuffix
}

const ninePatchSuffix = ".9.png"

// TextWrap is the wrapping strategy for text.
type TextWrap uint8

// Wrapping strategies.
const (
	NoWrap TextWrap = iota
	Wrap
	WordWrap
)

func (tw TextWrap) String() string {
	switch tw {
	case Wrap:
		return "wrap"
	case WordWrap:
		return "word-wrap"
	}
	return "no-wrap"
}

// Direction is the direction in which layouts place their children.
type Direction uint8

// Layout directions.
const (
	LeftToRight Direction = iota
	RightToLeft
	TopToBottom
	BottomToTop
)

func (d Direction) String() string {
	switch d {
	case RightToLeft:
		return "right-to-left"
	case TopToBottom:
		return "top-to-bottom"
	case BottomToTop:
		return "bottom-to-top"
	}
	return "left-to-right"
}

// Align is the alignment of children along one axis.
type Align uint8

// Alignments.
const (
	AlignBegin Align = iota
	AlignCenter
	AlignEnd
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	}
	return "begin"
}

func (Number) isValue()     {}
func (Resource) isValue()   {}
func (TextWrap) isValue()   {}
func (Direction) isValue()  {}
func (Align) isValue()      {}
func (Size) isValue()       {}
func (Color) isValue()      {}
func (Rect) isValue()       {}
func (Background) isValue() {}
