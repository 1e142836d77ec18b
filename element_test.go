package iconic

import "testing"

func TestNewElementDefaults(t *testing.T) {
	e := NewElement("e", 16, 8)
	if e.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if e.Name != "e" || e.Width != 16 || e.Height != 8 {
		t.Errorf("got %q %vx%v", e.Name, e.Width, e.Height)
	}
	if !e.Visible || !e.Interactable {
		t.Error("new elements should be visible and interactable")
	}
	if e.RenderTransform() != nil {
		t.Error("render transform should start empty")
	}
	if e.RenderTransformOrigin() != (Vec2{}) {
		t.Error("origin should start at the top-left")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewElement("a", 1, 1)
	b := NewElement("b", 1, 1)
	if a.ID == b.ID {
		t.Errorf("IDs should be unique, both = %d", a.ID)
	}
}

func TestElementPrivateClock(t *testing.T) {
	e := NewElement("e", 1, 1)
	c := e.Clock()
	if c == nil || e.Clock() != c {
		t.Fatal("Clock should be created once and reused")
	}
	if e.Scene() != nil {
		t.Error("Scene should be nil before Add")
	}
}

func TestElementDisposeStopsSpin(t *testing.T) {
	v := newTestVisual()
	BeginSpin(v)
	a := spinHandle(t, v)

	v.Dispose()
	if !v.IsDisposed() {
		t.Fatal("IsDisposed should be true")
	}
	if a.Active() {
		t.Error("Dispose should stop the spin animation")
	}
	if v.Resources().Len() != 0 {
		t.Error("Dispose should clear resources")
	}
	if v.ID != 0 || v.OnClick != nil {
		t.Error("Dispose should clear identity and callbacks")
	}

	v.Dispose() // second call is a no-op
}

func TestElementDisposeRemovesFromScene(t *testing.T) {
	s := NewScene()
	e := NewElement("e", 1, 1)
	s.Add(e)
	e.Dispose()
	if len(s.Elements()) != 0 {
		t.Error("Dispose should remove the element from its scene")
	}
}

func TestElementBounds(t *testing.T) {
	e := NewElement("e", 4, 5)
	e.X, e.Y = 1, 2
	if got := e.Bounds(); got != (Rect{1, 2, 4, 5}) {
		t.Errorf("Bounds = %v", got)
	}
}
