package iconic

import (
	"math"
	"testing"
)

func TestNewIconViewDefaults(t *testing.T) {
	v := NewIconView("v", IconHome, nil)
	if v.Icon() != IconHome {
		t.Errorf("Icon = %v, want Home", v.Icon())
	}
	if v.Size() != DefaultIconSize || v.Height != DefaultIconSize {
		t.Errorf("size = %vx%v, want %d", v.Width, v.Height, DefaultIconSize)
	}
	if v.Color() != ColorBlack {
		t.Errorf("Color = %v, want black", v.Color())
	}
	if v.SpinDuration() != DefaultSpinDuration {
		t.Errorf("SpinDuration = %v, want %v", v.SpinDuration(), DefaultSpinDuration)
	}
	if v.Spin() || v.Rotation() != 0 || v.FlipOrientation() != FlipNormal {
		t.Error("new view should have no effects")
	}
	if v.RenderTransform() != nil {
		t.Error("no transform until an effect is applied")
	}
}

func TestIconViewSetSpin(t *testing.T) {
	v := NewIconView("v", IconSpinner, nil)
	v.SetSpin(true)
	if !IsSpinning(v) {
		t.Fatal("SetSpin(true) should begin spin")
	}
	first := spinHandle(t, v)

	v.SetSpin(true) // unchanged, must not restart
	if spinHandle(t, v) != first {
		t.Error("repeated SetSpin(true) should keep the handle")
	}

	v.SetSpin(false)
	if IsSpinning(v) {
		t.Error("SetSpin(false) should stop spin")
	}
}

func TestIconViewSetSpinDurationRestartsSpin(t *testing.T) {
	v := NewIconView("v", IconSpinner, nil)
	v.SetSpin(true)
	v.Clock().Advance(0.25)

	v.SetSpinDuration(4)
	a := spinHandle(t, v)
	if a.Duration != 4 {
		t.Errorf("Duration = %v, want 4", a.Duration)
	}
	rot := v.RenderTransform().(*TransformGroup).Rotation()
	if rot.Angle != 0 {
		t.Errorf("Angle = %f, restart should reset to 0", rot.Angle)
	}
	v.Clock().Advance(1)
	if math.Abs(rot.Angle-90) > 0.01 {
		t.Errorf("Angle = %f, want ~90", rot.Angle)
	}
}

func TestIconViewSetSpinDurationWhileStopped(t *testing.T) {
	v := NewIconView("v", IconSpinner, nil)
	v.SetSpinDuration(3)
	if IsSpinning(v) {
		t.Error("changing duration should not start a spin")
	}
	v.SetSpinDuration(-1)
	if v.SpinDuration() != minSpinDuration {
		t.Errorf("SpinDuration = %v, want %v", v.SpinDuration(), minSpinDuration)
	}
}

func TestIconViewCombinedEffects(t *testing.T) {
	v := NewIconView("v", IconCar, nil)
	v.SetFlipOrientation(FlipBoth)
	v.SetRotation(45)
	v.SetSpin(true)

	g := v.RenderTransform().(*TransformGroup)
	r, s := countKinds(g)
	if r != 1 || s != 1 {
		t.Fatalf("rotations=%d scales=%d, want 1 and 1", r, s)
	}
	if sc := g.Scale(); sc.ScaleX != -1 || sc.ScaleY != -1 {
		t.Errorf("Scale = %+v, want (-1, -1)", sc)
	}

	v.SetSpin(false)
	v.SetRotation(10)
	if g.Rotation().Angle != 10 || g.Len() != 2 {
		t.Errorf("Rotation = %f Len = %d, want 10 and 2", g.Rotation().Angle, g.Len())
	}
}

func TestIconViewInvalidation(t *testing.T) {
	v := NewIconView("v", IconHome, nil)
	v.bitmapDirty = false

	v.SetIcon(IconHome)
	if v.bitmapDirty {
		t.Error("same icon should not invalidate")
	}
	v.SetIcon(IconStar)
	if !v.bitmapDirty {
		t.Error("new icon should invalidate")
	}

	v.bitmapDirty = false
	v.SetColor(Color{R: 1, A: 1})
	if !v.bitmapDirty {
		t.Error("new color should invalidate")
	}

	v.bitmapDirty = false
	v.SetSize(48)
	if !v.bitmapDirty || v.Width != 48 || v.Height != 48 {
		t.Error("new size should resize and invalidate")
	}
}

func TestIconViewRebuildWithoutFontDrawsNothing(t *testing.T) {
	v := NewIconView("v", IconHome, nil)
	v.rebuildBitmap()
	if v.bitmap != nil || v.bitmapDirty {
		t.Error("no font means no bitmap and nothing pending")
	}
}

func TestIconViewRebuildFailureIsSticky(t *testing.T) {
	v := NewIconView("v", IconSpinner, testFont(t))
	v.rebuildBitmap()
	if !v.bitmapErr || v.bitmap != nil {
		t.Fatal("missing glyph should record a failure")
	}
	v.SetIcon(IconHome)
	if v.bitmapErr || !v.bitmapDirty {
		t.Error("a change should clear the failure and retry")
	}
}

func TestIconViewDispose(t *testing.T) {
	s := NewScene()
	v := NewIconView("v", IconSpinner, nil)
	s.Add(v.Element)
	v.SetSpin(true)

	v.Dispose()
	if !v.IsDisposed() || s.Clock().Len() != 0 || len(s.Elements()) != 0 {
		t.Error("Dispose should stop animations and leave the scene")
	}
	if v.Spin() || IsSpinning(v) {
		t.Error("disposed view should not report a spin")
	}
}
