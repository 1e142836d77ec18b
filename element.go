package iconic

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// ClickContext carries click event data.
type ClickContext struct {
	Element *Element
	GlobalX float64
	GlobalY float64
	LocalX  float64
	LocalY  float64
	Button  MouseButton
}

// --- ID counter ---

// elementIDCounter is a plain counter (no atomic; iconic is single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// --- Element ---

// Element is the visual unit of a Scene: a rectangle with a render transform
// slot, a transform origin, and a resource bag.
//
// Elements are not safe for concurrent use. Every method, and every effect
// such as BeginSpin or SetRotation, must run on the goroutine that owns the
// Scene.
type Element struct {
	// Identity
	ID   uint32
	Name string

	// Layout (local, unaffected by the render transform)
	X, Y          float64
	Width, Height float64

	// Visibility & interaction
	Visible      bool
	Interactable bool
	ZIndex       int

	// Metadata
	UserData any

	// OnClick fires on press then release over the element (nil by default).
	OnClick func(ClickContext)

	renderTransform       Transform
	renderTransformOrigin Vec2
	resources             ResourceBag

	clock *Clock
	scene *Scene

	// draw renders the element's content with the given scene-space matrix.
	draw func(dst *ebiten.Image, geo ebiten.GeoM)

	disposed bool
}

// NewElement creates a visible, interactable element with the given size.
func NewElement(name string, width, height float64) *Element {
	return &Element{
		ID:           nextElementID(),
		Name:         name,
		Width:        width,
		Height:       height,
		Visible:      true,
		Interactable: true,
	}
}

// RenderTransform returns the transform applied when drawing, or nil.
func (e *Element) RenderTransform() Transform {
	return e.renderTransform
}

// SetRenderTransform replaces the render transform.
func (e *Element) SetRenderTransform(t Transform) {
	e.renderTransform = t
}

// RenderTransformOrigin returns the pivot of the render transform as a
// fraction of the element's size. (0, 0) is the top-left corner.
func (e *Element) RenderTransformOrigin() Vec2 {
	return e.renderTransformOrigin
}

// SetRenderTransformOrigin sets the pivot of the render transform.
func (e *Element) SetRenderTransformOrigin(o Vec2) {
	e.renderTransformOrigin = o
}

// Resources returns the element's resource bag.
func (e *Element) Resources() *ResourceBag {
	return &e.resources
}

// Clock returns the clock that drives this element's animations: the scene's
// clock once added to a Scene, or a private clock before that. Animations
// begun on the private clock move to the scene's clock when the element is
// added.
func (e *Element) Clock() *Clock {
	if e.clock == nil {
		e.clock = NewClock()
	}
	return e.clock
}

// Scene returns the scene the element belongs to, or nil.
func (e *Element) Scene() *Scene {
	return e.scene
}

// Bounds returns the element's untransformed rectangle in scene space.
func (e *Element) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// attach binds the element to s and moves any running animations onto the
// scene's clock.
func (e *Element) attach(s *Scene) {
	if e.clock != nil && e.clock != s.clock {
		e.clock.transferTo(s.clock)
	}
	e.clock = s.clock
	e.scene = s
}

// detach unbinds the element from its scene. Animations stay running on a
// fresh private clock so they resume if the element is added elsewhere.
func (e *Element) detach() {
	if e.scene == nil {
		return
	}
	private := NewClock()
	e.resources.Range(func(_ string, v any) bool {
		if a, ok := v.(*DoubleAnimation); ok && a.clock == e.clock {
			e.clock.remove(a)
			private.add(a)
		}
		return true
	})
	e.clock = private
	e.scene = nil
}

// --- Disposal ---

// Dispose removes the element from its scene, stops every animation held in
// its resource bag, and clears callbacks.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	if e.scene != nil {
		e.scene.Remove(e)
	}
	e.resources.Range(func(_ string, v any) bool {
		if a, ok := v.(*DoubleAnimation); ok {
			a.Stop()
		}
		return true
	})
	e.resources.clear()
	logger.Debug("element disposed", zap.Uint32("id", e.ID), zap.String("name", e.Name))
	e.disposed = true
	e.ID = 0
	e.clock = nil
	e.renderTransform = nil
	e.UserData = nil
	e.OnClick = nil
	e.draw = nil
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}
