package iconic

import (
	"fmt"

	"go.uber.org/zap"
)

// spinnerKey names the spin animation in an element's resource bag.
const spinnerKey = "iconicSpinner"

// TransformGroupOf returns v's render transform as a *TransformGroup. If the
// slot holds anything else (or nothing), a new empty group replaces it and
// the transform origin is moved to the element's center (0.5, 0.5). A
// previous non-group transform is discarded.
func TransformGroupOf(v Visual) *TransformGroup {
	if g, ok := v.RenderTransform().(*TransformGroup); ok {
		return g
	}
	g := &TransformGroup{}
	v.SetRenderTransform(g)
	v.SetRenderTransformOrigin(Vec2{X: 0.5, Y: 0.5})
	return g
}

// BeginSpin starts rotating v through 360 degrees every SpinDuration seconds,
// forever. The Rotate component of v's transform group is reset to 0 (or
// appended at 0) and bound to the animation. Any spin already running on v
// is stopped and replaced.
// Panics if SpinDuration is not positive; v is left unchanged.
func BeginSpin[T SpinnableVisual](v T) {
	d := v.SpinDuration()
	if !(d > 0) {
		panic(fmt.Sprintf("iconic: spin duration must be positive, got %v", d))
	}
	g := TransformGroupOf(v)
	rot := findOrAddComponent(g, func() *Rotate { return &Rotate{} })

	res := v.Resources()
	if prev, ok := res.Lookup(spinnerKey); ok {
		if a, ok := prev.(*DoubleAnimation); ok {
			a.Stop()
		}
		res.Remove(spinnerKey)
		logger.Debug("spin replaced")
	}
	rot.Angle = 0

	anim := &DoubleAnimation{
		From:          0,
		To:            360,
		Duration:      d,
		RepeatForever: true,
	}
	anim.Bind(&rot.Angle)
	anim.Begin(v.Clock())
	res.Set(spinnerKey, anim)
	logger.Debug("spin started", zap.Float64("duration", anim.Duration))
}

// StopSpin halts v's spin animation and forgets it. The Rotate component
// keeps whatever angle it had reached. No-op when v is not spinning.
func StopSpin[T SpinnableVisual](v T) {
	res := v.Resources()
	prev, ok := res.Lookup(spinnerKey)
	if !ok {
		return
	}
	if a, ok := prev.(*DoubleAnimation); ok {
		a.Stop()
	}
	res.Remove(spinnerKey)
	logger.Debug("spin stopped")
}

// IsSpinning reports whether v has a running spin animation.
func IsSpinning(v Visual) bool {
	prev, ok := v.Resources().Lookup(spinnerKey)
	if !ok {
		return false
	}
	a, ok := prev.(*DoubleAnimation)
	return ok && a.Active()
}

// SetRotation copies v.Rotation() into the Rotate component of v's transform
// group, appending one if needed. Call it whenever the rotation changes.
func SetRotation[T RotatableVisual](v T) {
	g := TransformGroupOf(v)
	angle := v.Rotation()
	rot := findOrAddComponent(g, func() *Rotate { return &Rotate{} })
	rot.Angle = angle
}

// SetFlipOrientation writes the scale factors for v.FlipOrientation() into
// the Scale component of v's transform group, appending one if needed:
// Horizontal and Both mirror X, Vertical and Both mirror Y.
func SetFlipOrientation[T FlippableVisual](v T) {
	g := TransformGroupOf(v)
	sx, sy := v.FlipOrientation().scaleFactors()
	s := findOrAddComponent(g, func() *Scale { return &Scale{} })
	s.ScaleX = sx
	s.ScaleY = sy
}
