package iconic

import (
	"errors"
	"image"
	"image/color"
)

// ErrConvertBackUnsupported is the panic value of every ConvertBack method.
// Converting a description or bitmap back to an Icon is never valid.
var ErrConvertBackUnsupported = errors.New("iconic: ConvertBack is not supported")

// DescriptionConverter maps an Icon to its description for data-bound text.
type DescriptionConverter struct{}

// Convert returns the description of value. It reports false when value is
// not an Icon or the icon is an alias.
func (DescriptionConverter) Convert(value any) (string, bool) {
	icon, ok := value.(Icon)
	if !ok {
		return "", false
	}
	return icon.Description()
}

// ConvertBack always panics with ErrConvertBackUnsupported.
func (DescriptionConverter) ConvertBack(any) any {
	panic(ErrConvertBackUnsupported)
}

// ImageSourceConverter maps an Icon to a rasterized bitmap.
type ImageSourceConverter struct {
	Font *GlyphFont
	Size int // bitmap edge in pixels; 0 = DefaultIconSize
}

// Convert renders value with the color given in param (black when param is
// not a color.Color). It reports false when value is not an Icon, no font is
// set, or the font has no glyph for the icon.
func (c ImageSourceConverter) Convert(value any, param any) (image.Image, bool) {
	icon, ok := value.(Icon)
	if !ok || c.Font == nil {
		return nil, false
	}
	clr, ok := param.(color.Color)
	if !ok {
		clr = color.Black
	}
	size := c.Size
	if size <= 0 {
		size = DefaultIconSize
	}
	img, err := c.Font.ImageSource(icon, clr, size)
	if err != nil {
		return nil, false
	}
	return img, true
}

// ConvertBack always panics with ErrConvertBackUnsupported.
func (ImageSourceConverter) ConvertBack(any) any {
	panic(ErrConvertBackUnsupported)
}
