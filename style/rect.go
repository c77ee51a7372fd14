package style

import (
	"fmt"
)

// Rect holds four side values, e.g. for padding and margins.
type Rect struct {
	Top, Right, Bottom, Left float32
}

// UniformRect returns a rectangle with all sides set to v.
func UniformRect(v float32) Rect {
	return Rect{v, v, v, v}
}

func (r Rect) String() string {
	return fmt.Sprintf("(top: %s, right: %s, bottom: %s, left: %s)",
		Number(r.Top), Number(r.Right), Number(r.Bottom), Number(r.Left))
}

// Side returns a single side of r, given as index 0–3 in the order
// top, right, bottom, left.
func (r Rect) Side(i int) float32 {
	switch i {
	case 0:
		return r.Top
	case 1:
		return r.Right
	case 2:
		return r.Bottom
	}
	return r.Left
}

// RectFromShorthand distributes 1 to 4 values over the sides of a rectangle.
// Logic to distribute values follows CSS shorthand properties:
//
//    1 value:  all sides
//    2 values: top and bottom, right and left
//    3 values: top, right and left, bottom
//    4 values: top, right, bottom, left
func RectFromShorthand(fields []float32) (Rect, error) {
	switch len(fields) {
	case 1:
		return UniformRect(fields[0]), nil
	case 2:
		return Rect{fields[0], fields[1], fields[0], fields[1]}, nil
	case 3:
		return Rect{fields[0], fields[1], fields[2], fields[1]}, nil
	case 4:
		return Rect{fields[0], fields[1], fields[2], fields[3]}, nil
	}
	return Rect{}, fmt.Errorf("expecting 1-4 values for a rectangle, have %d", len(fields))
}
