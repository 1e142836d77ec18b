package iconic

// Visual is the host-side view of an element that effects operate on.
// *Element implements it, and so does any type embedding *Element.
type Visual interface {
	RenderTransform() Transform
	SetRenderTransform(Transform)
	RenderTransformOrigin() Vec2
	SetRenderTransformOrigin(Vec2)
	Resources() *ResourceBag
	Clock() *Clock
}

// Spinnable is implemented by elements that can spin continuously.
type Spinnable interface {
	// SpinDuration is the length of one revolution in seconds (> 0).
	SpinDuration() float64
}

// Rotatable is implemented by elements with a static rotation.
type Rotatable interface {
	// Rotation is the rotation angle in degrees.
	Rotation() float64
}

// Flippable is implemented by elements that can be mirrored.
type Flippable interface {
	FlipOrientation() FlipOrientation
}

// SpinnableVisual is a Visual that can spin.
type SpinnableVisual interface {
	Visual
	Spinnable
}

// RotatableVisual is a Visual with a static rotation.
type RotatableVisual interface {
	Visual
	Rotatable
}

// FlippableVisual is a Visual that can be mirrored.
type FlippableVisual interface {
	Visual
	Flippable
}
