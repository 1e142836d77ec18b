package iconic

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultIconSize is the bitmap edge used when no size is given.
const DefaultIconSize = 32

// ErrGlyphNotFound is returned when the font has no glyph for an icon.
var ErrGlyphNotFound = errors.New("iconic: glyph not found")

// GlyphFont is a parsed icon font (normally FontAwesome.otf or .ttf).
type GlyphFont struct {
	font *opentype.Font
}

// LoadGlyphFont parses TrueType or OpenType font data.
func LoadGlyphFont(data []byte) (*GlyphFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("iconic: parse glyph font: %w", err)
	}
	return &GlyphFont{font: f}, nil
}

// ImageSource rasterizes icon in color c, centered in a size×size bitmap.
func (f *GlyphFont) ImageSource(icon Icon, c color.Color, size int) (*image.RGBA, error) {
	if icon == IconNone || !icon.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrGlyphNotFound, icon)
	}
	return f.renderRune(icon.Glyph(), c, size)
}

// renderRune draws r centered in a size×size bitmap.
func (f *GlyphFont) renderRune(r rune, c color.Color, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("iconic: invalid glyph size %d", size)
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("iconic: create font face: %w", err)
	}
	defer face.Close()

	bounds, _, ok := face.GlyphBounds(r)
	if !ok {
		return nil, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	}

	// Center the glyph's ink box rather than its advance box.
	edge := fixed.I(size)
	gw := bounds.Max.X - bounds.Min.X
	gh := bounds.Max.Y - bounds.Min.Y
	dot := fixed.Point26_6{
		X: (edge-gw)/2 - bounds.Min.X,
		Y: (edge-gh)/2 - bounds.Min.Y,
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(string(r))
	return img, nil
}
