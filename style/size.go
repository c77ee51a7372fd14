package style

import (
	"strconv"
)

const (
	sizeShrink uint8 = iota
	sizeExact
	sizeFill
)

// Size is an option type for widget dimensions.
type Size struct {
	n    float32
	kind uint8
}

/*
type Size
	= Shrink
	| Exact n
	| Fill weight
*/

// Shrink creates a size which shrinks to fit the widget's content.
// This is the zero value of Size.
func Shrink() Size {
	return Size{kind: sizeShrink}
}

// Exact creates a size with a fixed value of n.
func Exact(n float32) Size {
	return Size{n: n, kind: sizeExact}
}

// Fill creates a size which fills the available space. Siblings share the
// available space in proportion to their weights.
func Fill(weight int) Size {
	return Size{n: float32(weight), kind: sizeFill}
}

func (s Size) String() string {
	switch s.kind {
	case sizeExact:
		return strconv.FormatFloat(float64(s.n), 'g', -1, 32)
	case sizeFill:
		return "fill(" + strconv.Itoa(int(s.n)) + ")"
	}
	return "shrink"
}

// ---------------------------------------------------------------------------

// Match starts a match on the kind of a size:
//
//    var n float32
//    switch m := size.Match(); m {
//    case m.Exact(&n):
//        ...
//    case m.IsShrink():
//        ...
//    }
func (s Size) Match() *SizeMatcher {
	return &SizeMatcher{size: s}
}

// SizeMatcher matches a size against its variants. Each method returns the
// matcher itself if the size is of the variant, nil otherwise.
type SizeMatcher struct {
	size Size
}

// IsKind matches if the size is of the same kind as s.
func (m *SizeMatcher) IsKind(s Size) *SizeMatcher {
	if m.size.kind == s.kind {
		return m
	}
	return nil
}

// IsShrink matches sizes created with Shrink.
func (m *SizeMatcher) IsShrink() *SizeMatcher {
	if m.size.kind == sizeShrink {
		return m
	}
	return nil
}

// Exact matches fixed sizes and extracts the value.
func (m *SizeMatcher) Exact(n *float32) *SizeMatcher {
	if m.size.kind == sizeExact {
		if n != nil {
			*n = m.size.n
		}
		return m
	}
	return nil
}

// Fill matches fill sizes and extracts the weight.
func (m *SizeMatcher) Fill(weight *int) *SizeMatcher {
	if m.size.kind == sizeFill {
		if weight != nil {
			*weight = int(m.size.n)
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// SizePatterns holds a result for every variant of Size.
type SizePatterns[T any] struct {
	Shrink T
	Exact  T
	Fill   T
}

// SizePattern starts an expression-style match on a size:
//
//    e := style.SizePattern[string](size)
//    policy := e.OneOf(style.SizePatterns[string]{
//        Exact:  "fixed",
//        Fill:   "stretch",
//        Shrink: "content",
//    })
func SizePattern[T any](s Size) *SizeExpr[T] {
	return &SizeExpr[T]{size: s}
}

// SizeExpr is an expression-style matcher for sizes.
type SizeExpr[T any] struct {
	size Size
}

// OneOf selects the pattern result for the size's variant.
func (e *SizeExpr[T]) OneOf(patterns SizePatterns[T]) T {
	switch e.size.kind {
	case sizeExact:
		return patterns.Exact
	case sizeFill:
		return patterns.Fill
	}
	return patterns.Shrink
}

// With extracts the size's number (the value for exact sizes, the weight
// for fill sizes).
func (e *SizeExpr[T]) With(n *float32) *SizeExpr[T] {
	*n = e.size.n
	return e
}

// Const returns x. It is used to chain With with a result value.
func (e *SizeExpr[T]) Const(x T) T {
	return x
}
