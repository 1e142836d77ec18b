package iconic

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to image/color.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default glyph color.
var ColorBlack = Color{0, 0, 0, 1}

// ColorWhite is the identity tint.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.toNRGBA().RGBA()
}

// toNRGBA converts to an 8-bit non-premultiplied color, clamping each
// component to [0, 1].
func (c Color) toNRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// ColorFrom converts any color.Color into a Color.
func ColorFrom(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, origins, and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// FlipOrientation selects which axes an element is mirrored across.
type FlipOrientation uint8

const (
	FlipNormal     FlipOrientation = iota // no mirroring
	FlipHorizontal                        // mirror left-right (scaleX = -1)
	FlipVertical                          // mirror top-bottom (scaleY = -1)
	FlipBoth                              // mirror both axes
)

var flipNames = [...]string{"Normal", "Horizontal", "Vertical", "Both"}

// String returns the orientation name, e.g. "Horizontal".
func (f FlipOrientation) String() string {
	if int(f) < len(flipNames) {
		return flipNames[f]
	}
	return "FlipOrientation(" + strconv.Itoa(int(f)) + ")"
}

// scaleFactors returns the (scaleX, scaleY) pair for the orientation.
func (f FlipOrientation) scaleFactors() (sx, sy float64) {
	sx, sy = 1, 1
	if f == FlipHorizontal || f == FlipBoth {
		sx = -1
	}
	if f == FlipVertical || f == FlipBoth {
		sy = -1
	}
	return sx, sy
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// ParseFlipOrientation parses an orientation name, ignoring case.
func ParseFlipOrientation(s string) (FlipOrientation, error) {
	for i, name := range flipNames {
		if strings.EqualFold(s, name) {
			return FlipOrientation(i), nil
		}
	}
	return FlipNormal, fmt.Errorf("iconic: unknown flip orientation %q", s)
}
