package iconic

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// pointerState tracks the mouse between frames.
type pointerState struct {
	down   bool
	button MouseButton
	target *Element // element under the pointer at press time
}

// hitTest finds the topmost visible, interactable element containing
// (x, y). The point is mapped through each element's inverse transform, so
// rotated and flipped elements hit-test by their drawn shape.
func (s *Scene) hitTest(x, y float64) *Element {
	order := s.paintOrder()
	for i := len(order) - 1; i >= 0; i-- {
		e := order[i]
		if !e.Visible || !e.Interactable || e.Width <= 0 || e.Height <= 0 {
			continue
		}
		lx, ly := e.WorldToLocal(x, y)
		if lx >= 0 && lx <= e.Width && ly >= 0 && ly <= e.Height {
			return e
		}
	}
	return nil
}

// processInput consumes one injected event if any are queued, otherwise
// reads the real mouse.
func (s *Scene) processInput() {
	if len(s.injectQueue) > 0 {
		evt := s.injectQueue[0]
		copy(s.injectQueue, s.injectQueue[1:])
		s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
		s.processPointer(evt.x, evt.y, evt.pressed, evt.button)
		return
	}

	mx, my := ebiten.CursorPosition()
	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}
	s.processPointer(float64(mx), float64(my), pressed, button)
}

// processPointer runs the press/release state machine. A click fires when
// the release lands on the element that was pressed.
func (s *Scene) processPointer(x, y float64, pressed bool, button MouseButton) {
	ps := &s.pointer
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.target = s.hitTest(x, y)
	case !pressed && ps.down:
		target := ps.target
		ps.down = false
		ps.target = nil
		if target == nil || target.OnClick == nil || target.disposed {
			return
		}
		if s.hitTest(x, y) != target {
			return
		}
		lx, ly := target.WorldToLocal(x, y)
		target.OnClick(ClickContext{
			Element: target,
			GlobalX: x,
			GlobalY: y,
			LocalX:  lx,
			LocalY:  ly,
			Button:  ps.button,
		})
	}
}
