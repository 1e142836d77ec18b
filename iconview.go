package iconic

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// DefaultSpinDuration is the revolution time of a new IconView, in seconds.
const DefaultSpinDuration = 1.0

// minSpinDuration is the smallest accepted spin duration.
const minSpinDuration = 0.001

// IconView is an Element that draws a single icon glyph. It is Spinnable,
// Rotatable and Flippable; its setters apply the matching effect right away,
// so spin, rotation and flip can be combined in any order.
type IconView struct {
	*Element

	icon         Icon
	color        Color
	font         *GlyphFont
	spin         bool
	spinDuration float64
	rotation     float64
	flip         FlipOrientation

	bitmap      *ebiten.Image
	bitmapDirty bool
	bitmapErr   bool // last rebuild failed; retried after the next change
}

// NewIconView creates a DefaultIconSize view of icon drawn with font.
// font may be nil, in which case nothing is drawn until SetFont is called.
func NewIconView(name string, icon Icon, font *GlyphFont) *IconView {
	v := &IconView{
		Element:      NewElement(name, DefaultIconSize, DefaultIconSize),
		icon:         icon,
		color:        ColorBlack,
		font:         font,
		spinDuration: DefaultSpinDuration,
		bitmapDirty:  true,
	}
	v.Element.draw = v.drawGlyph
	return v
}

// Icon returns the displayed icon.
func (v *IconView) Icon() Icon {
	return v.icon
}

// SetIcon changes the displayed icon.
func (v *IconView) SetIcon(icon Icon) {
	if v.icon == icon {
		return
	}
	v.icon = icon
	v.invalidate()
}

// Color returns the glyph color.
func (v *IconView) Color() Color {
	return v.color
}

// SetColor changes the glyph color.
func (v *IconView) SetColor(c Color) {
	if v.color == c {
		return
	}
	v.color = c
	v.invalidate()
}

// Font returns the glyph font, or nil.
func (v *IconView) Font() *GlyphFont {
	return v.font
}

// SetFont changes the glyph font.
func (v *IconView) SetFont(f *GlyphFont) {
	if v.font == f {
		return
	}
	v.font = f
	v.invalidate()
}

// Size returns the edge length of the view.
func (v *IconView) Size() float64 {
	return v.Width
}

// SetSize resizes the view to size×size.
func (v *IconView) SetSize(size float64) {
	if v.Width == size && v.Height == size {
		return
	}
	v.Width = size
	v.Height = size
	v.invalidate()
}

// Spin reports whether the view is spinning.
func (v *IconView) Spin() bool {
	return v.spin
}

// SetSpin starts or stops the spin animation.
func (v *IconView) SetSpin(on bool) {
	if v.spin == on {
		return
	}
	v.spin = on
	if on {
		BeginSpin(v)
	} else {
		StopSpin(v)
	}
}

// SpinDuration implements Spinnable.
func (v *IconView) SpinDuration() float64 {
	return v.spinDuration
}

// SetSpinDuration changes the revolution time in seconds. Values below one
// millisecond are raised to one millisecond. A running spin restarts with
// the new duration.
func (v *IconView) SetSpinDuration(d float64) {
	if !(d >= minSpinDuration) {
		d = minSpinDuration
	}
	if v.spinDuration == d {
		return
	}
	v.spinDuration = d
	if v.spin {
		BeginSpin(v)
	}
}

// Rotation implements Rotatable.
func (v *IconView) Rotation() float64 {
	return v.rotation
}

// SetRotation changes the static rotation in degrees.
func (v *IconView) SetRotation(deg float64) {
	v.rotation = deg
	SetRotation(v)
}

// FlipOrientation implements Flippable.
func (v *IconView) FlipOrientation() FlipOrientation {
	return v.flip
}

// SetFlipOrientation changes which axes the view is mirrored across.
func (v *IconView) SetFlipOrientation(f FlipOrientation) {
	v.flip = f
	SetFlipOrientation(v)
}

// Dispose releases the cached bitmap and disposes the underlying Element,
// stopping any spin.
func (v *IconView) Dispose() {
	v.spin = false
	if v.bitmap != nil {
		v.bitmap.Deallocate()
		v.bitmap = nil
	}
	v.Element.Dispose()
}

func (v *IconView) invalidate() {
	v.bitmapDirty = true
	v.bitmapErr = false
}

// rebuildBitmap rasterizes the glyph at the view's pixel size.
func (v *IconView) rebuildBitmap() {
	v.bitmapDirty = false
	if v.bitmap != nil {
		v.bitmap.Deallocate()
		v.bitmap = nil
	}
	if v.font == nil || v.icon == IconNone {
		return
	}
	size := int(math.Ceil(v.Width))
	img, err := v.font.ImageSource(v.icon, v.color, size)
	if err != nil {
		v.bitmapErr = true
		logger.Warn("icon rasterization failed",
			zap.String("name", v.Name),
			zap.Stringer("icon", v.icon),
			zap.Error(err))
		return
	}
	v.bitmap = ebiten.NewImageFromImage(img)
}

// drawGlyph is the Element draw hook.
func (v *IconView) drawGlyph(dst *ebiten.Image, geo ebiten.GeoM) {
	if v.bitmapDirty && !v.bitmapErr {
		v.rebuildBitmap()
	}
	if v.bitmap == nil {
		return
	}
	b := v.bitmap.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(v.Width/float64(b.Dx()), v.Height/float64(b.Dy()))
	op.GeoM.Concat(geo)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(v.bitmap, op)
}
