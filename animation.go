package iconic

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DoubleAnimation drives a single float64 field from From to To over Duration
// seconds. Bind it to a target field, then Begin it on a Clock; the clock's
// owner calls Advance each frame.
//
// A finite animation stops itself after one pass (two with AutoReverse) and
// leaves the target at its final value. With RepeatForever it wraps its phase
// and runs until Stop is called.
type DoubleAnimation struct {
	From, To      float64
	Duration      float64 // seconds per pass, must be > 0
	RepeatForever bool
	AutoReverse   bool
	Ease          ease.TweenFunc // nil = ease.Linear

	// OnCompleted fires once when a finite animation reaches its end.
	// It is not called by Stop.
	OnCompleted func()

	target  *float64
	tween   *gween.Tween
	elapsed float64
	clock   *Clock
	epoch   uint64 // clock tick the animation was registered in
}

// Bind sets the field the animation writes to.
func (a *DoubleAnimation) Bind(target *float64) {
	a.target = target
}

// Target returns the bound field, or nil.
func (a *DoubleAnimation) Target() *float64 {
	return a.target
}

// Begin starts the animation on clock, restarting it from From if it was
// already running. The target is set to From immediately.
// Panics if no target is bound, Duration is not positive, or clock is nil.
func (a *DoubleAnimation) Begin(clock *Clock) {
	if a.target == nil {
		panic("iconic: animation has no bound target")
	}
	if !(a.Duration > 0) {
		panic(fmt.Sprintf("iconic: animation duration must be positive, got %v", a.Duration))
	}
	if clock == nil {
		panic("iconic: cannot begin animation on nil clock")
	}
	a.Stop()

	fn := a.Ease
	if fn == nil {
		fn = ease.Linear
	}
	a.tween = gween.New(float32(a.From), float32(a.To), float32(a.Duration), fn)
	a.elapsed = 0
	*a.target = a.From
	clock.add(a)
}

// Stop halts the animation. The target keeps its current value.
// Safe to call when not running and from within the clock's Advance.
func (a *DoubleAnimation) Stop() {
	if a.clock == nil {
		return
	}
	a.clock.remove(a)
}

// Active reports whether the animation is registered with a clock.
func (a *DoubleAnimation) Active() bool {
	return a.clock != nil
}

// Elapsed returns the time into the current cycle in seconds.
func (a *DoubleAnimation) Elapsed() float64 {
	return a.elapsed
}

// period returns the length of one full cycle.
func (a *DoubleAnimation) period() float64 {
	if a.AutoReverse {
		return 2 * a.Duration
	}
	return a.Duration
}

// update advances the animation by dt seconds and writes the target.
func (a *DoubleAnimation) update(dt float64) {
	a.elapsed += dt
	p := a.period()

	if a.elapsed >= p {
		if !a.RepeatForever {
			if a.AutoReverse {
				*a.target = a.From
			} else {
				*a.target = a.To
			}
			a.elapsed = p
			a.Stop()
			if a.OnCompleted != nil {
				a.OnCompleted()
			}
			return
		}
		a.elapsed = math.Mod(a.elapsed, p)
	}

	t := a.elapsed
	if a.AutoReverse && t > a.Duration {
		t = p - t
	}
	v, _ := a.tween.Set(float32(t))
	*a.target = float64(v)
}

// Clock tracks running animations. It is driven by its owner (usually a
// Scene) through Advance; nothing runs on its own goroutine.
type Clock struct {
	anims   []*DoubleAnimation
	ticking []*DoubleAnimation // reused snapshot buffer for Advance
	epoch   uint64             // incremented by every Advance
}

// NewClock creates an empty clock.
func NewClock() *Clock {
	return &Clock{}
}

// Len returns the number of running animations.
func (c *Clock) Len() int {
	return len(c.anims)
}

// Advance moves every running animation forward by dt seconds. An animation
// stopped during the tick is not advanced further; one begun (or restarted)
// during the tick holds its From value until the next Advance.
func (c *Clock) Advance(dt float64) {
	c.epoch++
	if len(c.anims) == 0 {
		return
	}
	c.ticking = append(c.ticking[:0], c.anims...)
	for i, a := range c.ticking {
		if a.clock == c && a.epoch != c.epoch {
			a.update(dt)
		}
		c.ticking[i] = nil
	}
	c.ticking = c.ticking[:0]
}

// StopAll stops every running animation.
func (c *Clock) StopAll() {
	for len(c.anims) > 0 {
		c.anims[len(c.anims)-1].Stop()
	}
}

func (c *Clock) add(a *DoubleAnimation) {
	a.clock = c
	a.epoch = c.epoch
	c.anims = append(c.anims, a)
}

func (c *Clock) remove(a *DoubleAnimation) {
	for i, x := range c.anims {
		if x == a {
			copy(c.anims[i:], c.anims[i+1:])
			c.anims[len(c.anims)-1] = nil
			c.anims = c.anims[:len(c.anims)-1]
			break
		}
	}
	a.clock = nil
}

// transferTo moves every running animation onto dst, keeping its phase.
func (c *Clock) transferTo(dst *Clock) {
	if c == dst {
		return
	}
	for _, a := range c.anims {
		a.clock = dst
		a.epoch = dst.epoch
		dst.anims = append(dst.anims, a)
	}
	clear(c.anims)
	c.anims = c.anims[:0]
}
