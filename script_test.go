package iconic

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`
steps:
  - action: screenshot
    label: initial
  - action: click
    x: 100
    y: 200
  - action: wait
    frames: 3
`)
	sc, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sc.steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(sc.steps))
	}
	if sc.steps[1].Action != "click" || sc.steps[1].X != 100 || sc.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if sc.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScriptJSON(t *testing.T) {
	sc, err := LoadScript([]byte(`{"steps": [{"action": "click", "x": 5, "y": 6}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if sc.steps[0].X != 5 || sc.steps[0].Y != 6 {
		t.Error("JSON step mismatch")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	for name, data := range map[string]string{
		"invalid": "steps: [",
		"empty":   "steps: []",
		"action":  "steps:\n  - action: drag\n",
	} {
		if _, err := LoadScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestScriptClickTogglesSpin(t *testing.T) {
	s := NewScene()
	v := NewIconView("v", IconSpinner, nil)
	v.OnClick = func(ClickContext) { v.SetSpin(!v.Spin()) }
	s.Add(v.Element)

	sc, err := LoadScript([]byte("steps:\n  - action: click\n    x: 10\n    y: 10\n"))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScript(sc)

	// Frame 1 queues press+release and consumes the press; frame 2 the release.
	for i := 0; i < 2; i++ {
		if err := s.step(0.1); err != nil {
			t.Fatal(err)
		}
	}
	if !v.Spin() || !IsSpinning(v) {
		t.Error("scripted click should start the spin")
	}
	if err := s.step(0.1); err != nil {
		t.Fatal(err)
	}
	if !sc.Done() {
		t.Error("script should be done")
	}
}

func TestScriptWait(t *testing.T) {
	s := NewScene()
	sc, err := LoadScript([]byte("steps:\n  - action: wait\n    frames: 3\n  - action: screenshot\n    label: x\n"))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScript(sc)
	for i := 0; i < 3; i++ {
		s.script.step(s)
	}
	if len(s.screenshotQueue) != 0 {
		t.Fatal("screenshot should wait three frames")
	}
	s.script.step(s)
	if len(s.screenshotQueue) != 1 || !sc.Done() {
		t.Errorf("queue = %v done = %v, want one screenshot and done", s.screenshotQueue, sc.Done())
	}
}

func TestSanitizeLabel(t *testing.T) {
	for in, want := range map[string]string{
		"":            "unlabeled",
		"  ":          "unlabeled",
		"after click": "after_click",
		"a/b\\c":      "a_b_c",
		"v1.2-ok":     "v1.2-ok",
	} {
		if got := sanitizeLabel(in); got != want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	img := unpremultiply([]byte{64, 32, 0, 128, 10, 20, 30, 255, 0, 0, 0, 0}, 3, 1)
	if got := img.Pix[:4]; got[0] != 127 || got[1] != 63 || got[2] != 0 || got[3] != 128 {
		t.Errorf("half alpha = %v, want [127 63 0 128]", got)
	}
	if got := img.Pix[4:8]; got[0] != 10 || got[3] != 255 {
		t.Errorf("opaque pixel changed: %v", got)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(path, unpremultiply(make([]byte, 16), 2, 2)); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "\x89PNG") {
		t.Error("file is not a PNG")
	}
}
