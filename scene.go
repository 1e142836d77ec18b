package iconic

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Scene is the top-level object that owns the elements, the animation clock,
// and pointer state.
type Scene struct {
	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	// ScreenshotDir receives PNGs queued with Screenshot. Empty means
	// DefaultScreenshotDir.
	ScreenshotDir string

	elements []*Element
	sorted   []*Element // reused buffer for ZIndex-sorted painter order
	clock    *Clock
	debug    bool

	updateFunc func() error

	// Input state
	pointer     pointerState
	injectQueue []syntheticPointerEvent
	script      *Script

	screenshotQueue []string
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{clock: NewClock()}
}

// Clock returns the clock that drives every animation in the scene.
func (s *Scene) Clock() *Clock {
	return s.clock
}

// Add appends e to the scene. If e belongs to another scene it is removed
// from that scene first. Animations begun on e before it was added keep
// running on the scene's clock.
// Panics if e is nil or disposed.
func (s *Scene) Add(e *Element) {
	if e == nil {
		panic("iconic: cannot add nil element")
	}
	if e.disposed {
		panic("iconic: cannot add disposed element")
	}
	if e.scene == s {
		return
	}
	if e.scene != nil {
		e.scene.Remove(e)
	}
	e.attach(s)
	s.elements = append(s.elements, e)
	if s.debug {
		debugCheckElementCount(s)
	}
}

// Remove detaches e from the scene. No-op if e is not in this scene.
func (s *Scene) Remove(e *Element) {
	if e.scene != s {
		return
	}
	for i, x := range s.elements {
		if x == e {
			copy(s.elements[i:], s.elements[i+1:])
			s.elements[len(s.elements)-1] = nil
			s.elements = s.elements[:len(s.elements)-1]
			break
		}
	}
	if s.pointer.target == e {
		s.pointer.target = nil
	}
	e.detach()
}

// Elements returns the element list in insertion order. The returned slice
// MUST NOT be mutated by the caller.
func (s *Scene) Elements() []*Element {
	return s.elements
}

// SetUpdateFunc registers a callback run once per Update, after input and
// before animations advance.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDebugMode enables or disables debug logging of scene statistics.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update processes input, runs the update callback, and advances animations
// by one tick.
func (s *Scene) Update() error {
	return s.step(1.0 / float64(ebiten.TPS()))
}

// step is Update with an explicit delta in seconds.
func (s *Scene) step(dt float64) error {
	if s.script != nil {
		s.script.step(s)
	}
	s.processInput()
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.clock.Advance(dt)
	return nil
}

// Draw paints every visible element in ZIndex order onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toNRGBA())
	}
	drawn := 0
	for _, e := range s.paintOrder() {
		if !e.Visible || e.draw == nil {
			continue
		}
		e.draw(screen, e.GeoM())
		drawn++
	}
	if s.debug {
		logger.Debug("scene drawn",
			zap.Int("elements", len(s.elements)),
			zap.Int("drawn", drawn),
			zap.Int("animations", s.clock.Len()))
	}
	s.flushScreenshots(screen)
}

// paintOrder returns elements sorted by ZIndex, ties kept in insertion order.
func (s *Scene) paintOrder() []*Element {
	s.sorted = append(s.sorted[:0], s.elements...)
	sort.SliceStable(s.sorted, func(i, j int) bool {
		return s.sorted[i].ZIndex < s.sorted[j].ZIndex
	})
	return s.sorted
}
