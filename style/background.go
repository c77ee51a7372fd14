package style

import (
	"fmt"
)

// BackgroundKind tells the variants of Background apart.
type BackgroundKind uint8

// Kinds of backgrounds.
const (
	BackgroundNone BackgroundKind = iota
	BackgroundColor
	BackgroundImage
	BackgroundPatch
)

// Background is the fill of a widget's layout rectangle: nothing, a plain
// color, an image, or a nine-patch image. Images are tinted with Color.
type Background struct {
	Kind  BackgroundKind
	Image Resource
	Color Color
}

// NoBackground returns an empty background.
func NoBackground() Background {
	return Background{Kind: BackgroundNone}
}

// ColorBackground returns a plain color background.
func ColorBackground(c Color) Background {
	return Background{Kind: BackgroundColor, Color: c}
}

// ImageBackground returns an image background tinted with c.
func ImageBackground(url Resource, c Color) Background {
	return Background{Kind: BackgroundImage, Image: url, Color: c}
}

// PatchBackground returns a nine-patch background tinted with c.
func PatchBackground(url Resource, c Color) Background {
	return Background{Kind: BackgroundPatch, Image: url, Color: c}
}

// URLBackground returns the background for a bare url. Urls ending in
// ".9.png" are nine-patches, all other urls are plain images; both are
// tinted white.
func URLBackground(url Resource) Background {
	if url.IsNinePatch() {
		return PatchBackground(url, White)
	}
	return ImageBackground(url, White)
}

func (bg Background) String() string {
	switch bg.Kind {
	case BackgroundColor:
		return bg.Color.String()
	case BackgroundImage:
		return fmt.Sprintf("image(%s, %s)", bg.Image, bg.Color)
	case BackgroundPatch:
		return fmt.Sprintf("patch(%s, %s)", bg.Image, bg.Color)
	}
	return "none"
}
