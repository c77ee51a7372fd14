package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Key identifies a style property.
type Key uint8

// Property keys. Shorthand keys (KeyPadding, KeyMargin) are expanded into
// their four longhand keys during the cascade.
const (
	KeyNone Key = iota
	KeyWidth
	KeyHeight
	KeyBackground
	KeyScrollbarHorizontal
	KeyScrollbarVertical
	KeyPadding
	KeyPaddingTop
	KeyPaddingRight
	KeyPaddingBottom
	KeyPaddingLeft
	KeyMargin
	KeyMarginTop
	KeyMarginRight
	KeyMarginBottom
	KeyMarginLeft
	KeyFont
	KeyColor
	KeyTextSize
	KeyTextWrap
	KeyLayoutDirection
	KeyAlignHorizontal
	KeyAlignVertical
	keyCount
)

// KeyCount is the number of property keys, including KeyNone.
const KeyCount = int(keyCount)

var keyNames = [keyCount]string{
	"<none>",
	"width",
	"height",
	"background",
	"scrollbar-horizontal",
	"scrollbar-vertical",
	"padding",
	"padding-top",
	"padding-right",
	"padding-bottom",
	"padding-left",
	"margin",
	"margin-top",
	"margin-right",
	"margin-bottom",
	"margin-left",
	"font",
	"color",
	"text_size",
	"text_wrap",
	"layout-direction",
	"align_horizontal",
	"align_vertical",
}

// aliases lists alternative spellings. Stylesheets written for older
// versions use dashes and underscores inconsistently.
var aliases = map[string]Key{
	"scrollbar_horizontal": KeyScrollbarHorizontal,
	"scrollbar_vertical":   KeyScrollbarVertical,
	"text-size":            KeyTextSize,
	"text-wrap":            KeyTextWrap,
	"layout_direction":     KeyLayoutDirection,
	"align-horizontal":     KeyAlignHorizontal,
	"align-vertical":       KeyAlignVertical,
	"padding_top":          KeyPaddingTop,
	"padding_right":        KeyPaddingRight,
	"padding_bottom":       KeyPaddingBottom,
	"padding_left":         KeyPaddingLeft,
	"margin_top":           KeyMarginTop,
	"margin_right":         KeyMarginRight,
	"margin_bottom":        KeyMarginBottom,
	"margin_left":          KeyMarginLeft,
}

var keysByName map[string]Key

func init() {
	keysByName = make(map[string]Key, len(keyNames)+len(aliases))
	for k := KeyWidth; k < keyCount; k++ {
		keysByName[keyNames[k]] = k
	}
	for name, k := range aliases {
		keysByName[name] = k
	}
}

func (k Key) String() string {
	if k >= keyCount {
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
	return keyNames[k]
}

// KeyForName returns the property key for a property name as written in a
// stylesheet. Names are case-insensitive. Unknown names result in an
// *UnknownPropertyError.
func KeyForName(name string) (Key, error) {
	k, ok := keysByName[strings.ToLower(name)]
	if !ok {
		return KeyNone, &UnknownPropertyError{Name: name}
	}
	return k, nil
}

// Keys returns all valid property keys in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyWidth; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// KeyValue is a container for a style declaration.
type KeyValue struct {
	Key   Key
	Value Value
}

func (kv KeyValue) String() string {
	return fmt.Sprintf("%s: %s", kv.Key, kv.Value)
}

// --- Property Groups --------------------------------------------------

// Symbolic names for property groups. Groups are used for organizing
// debug output and do not influence the cascade.
const (
	PGDimension  = "Dimension"
	PGBackground = "Background"
	PGPadding    = "Padding"
	PGMargins    = "Margins"
	PGColor      = "Color"
	PGText       = "Text"
	PGLayout     = "Layout"
)

// GroupNameFromPropertyKey returns the property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey(KeyMarginTop) => "Margins"
func GroupNameFromPropertyKey(key Key) string {
	switch key {
	case KeyWidth, KeyHeight:
		return PGDimension
	case KeyBackground, KeyScrollbarHorizontal, KeyScrollbarVertical:
		return PGBackground
	case KeyPadding, KeyPaddingTop, KeyPaddingRight, KeyPaddingBottom, KeyPaddingLeft:
		return PGPadding
	case KeyMargin, KeyMarginTop, KeyMarginRight, KeyMarginBottom, KeyMarginLeft:
		return PGMargins
	case KeyColor:
		return PGColor
	case KeyFont, KeyTextSize, KeyTextWrap:
		return PGText
	}
	return PGLayout
}

// --- Compound properties ----------------------------------------------

var paddingSides = [4]Key{KeyPaddingTop, KeyPaddingRight, KeyPaddingBottom, KeyPaddingLeft}
var marginSides = [4]Key{KeyMarginTop, KeyMarginRight, KeyMarginBottom, KeyMarginLeft}

// IsShorthand is true for properties which are set through their
// longhand properties, i.e. padding and margin.
func IsShorthand(key Key) bool {
	return key == KeyPadding || key == KeyMargin
}

// Sides returns the four longhand keys of a shorthand key in the order
// top, right, bottom, left. ok is false for keys which are not shorthands.
func Sides(key Key) (sides [4]Key, ok bool) {
	switch key {
	case KeyPadding:
		return paddingSides, true
	case KeyMargin:
		return marginSides, true
	}
	return sides, false
}

// Longhands splits up a shorthand declaration into its individual
// components. Example:
//
//    Longhands(KeyValue{KeyPadding, Rect{1, 2, 3, 2}})
//
// will return
//
//    padding-top    => 1
//    padding-right  => 2
//    padding-bottom => 3
//    padding-left   => 2
//
// Declarations of other keys are returned unchanged.
func Longhands(kv KeyValue) []KeyValue {
	sides, ok := Sides(kv.Key)
	if !ok {
		return []KeyValue{kv}
	}
	r, ok := kv.Value.(Rect)
	if !ok {
		tracer().Errorf("shorthand %s carries non-rectangle value %v", kv.Key, kv.Value)
		return nil
	}
	return []KeyValue{
		{sides[0], Number(r.Top)},
		{sides[1], Number(r.Right)},
		{sides[2], Number(r.Bottom)},
		{sides[3], Number(r.Left)},
	}
}
