package prefab

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/phanxgames/iconic"
)

const spinnerYAML = `
name: loading
icon: Spinner
color: "#3399ff"
size: 48
x: 10
y: 20
spin: true
spin_duration: 2
flip: Horizontal
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(spinnerYAML))
	if err != nil {
		t.Fatal(err)
	}
	want := &IconPrefab{
		Name:         "loading",
		Icon:         "Spinner",
		Color:        "#3399ff",
		Size:         48,
		X:            10,
		Y:            20,
		Spin:         true,
		SpinDuration: 2,
		Flip:         "Horizontal",
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		is   error
	}{
		{"unknown icon", "icon: Unicorn", ErrUnknownIcon},
		{"bad flip", "icon: Home\nflip: Sideways", nil},
		{"bad color", "icon: Home\ncolor: blue", nil},
		{"negative size", "icon: Home\nsize: -1", nil},
		{"negative duration", "icon: Home\nspin_duration: -2", nil},
		{"bad yaml", "icon: [", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want iconic.Color
	}{
		{"#ffffff", iconic.Color{R: 1, G: 1, B: 1, A: 1}},
		{"000000", iconic.Color{A: 1}},
		{"#f00", iconic.Color{R: 1, A: 1}},
		{"#00ff0000", iconic.Color{G: 1}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "#12345", "#gggggg"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestBuildAppliesEffects(t *testing.T) {
	p, err := Parse([]byte(spinnerYAML))
	if err != nil {
		t.Fatal(err)
	}
	v, err := p.Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	if v.Name != "loading" || v.Icon() != iconic.IconSpinner || v.Size() != 48 {
		t.Errorf("view = %q %v size %v", v.Name, v.Icon(), v.Size())
	}
	if v.X != 10 || v.Y != 20 {
		t.Errorf("position = (%v, %v)", v.X, v.Y)
	}
	if !v.Spin() || !iconic.IsSpinning(v) || v.SpinDuration() != 2 {
		t.Error("view should spin with duration 2")
	}
	g, ok := v.RenderTransform().(*iconic.TransformGroup)
	if !ok {
		t.Fatal("expected a transform group")
	}
	if s := g.Scale(); s == nil || s.ScaleX != -1 || s.ScaleY != 1 {
		t.Errorf("Scale = %+v, want (-1, 1)", s)
	}
	if g.Len() != 2 {
		t.Errorf("Len = %d, want 2", g.Len())
	}
}

func TestApplyUpdatesExistingView(t *testing.T) {
	p, _ := Parse([]byte(spinnerYAML))
	v, _ := p.Build(nil)

	p2, err := Parse([]byte("name: loading\nicon: Refresh\nrotation: 90\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := p2.Apply(v); err != nil {
		t.Fatal(err)
	}
	if v.Spin() || iconic.IsSpinning(v) {
		t.Error("spin should be turned off")
	}
	if v.Icon() != iconic.IconRefresh {
		t.Errorf("Icon = %v, want Refresh", v.Icon())
	}
	if v.Size() != 48 {
		t.Errorf("zero size should keep 48, got %v", v.Size())
	}
	g := v.RenderTransform().(*iconic.TransformGroup)
	if g.Rotation().Angle != 90 || g.Len() != 2 {
		t.Errorf("Rotation = %v Len = %d, want 90 and 2", g.Rotation().Angle, g.Len())
	}
	if s := g.Scale(); s.ScaleX != 1 || s.ScaleY != 1 {
		t.Errorf("empty flip should reset to Normal, got %+v", s)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spinner.yaml")
	if err := os.WriteFile(path, []byte(spinnerYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "loading" {
		t.Errorf("Name = %q", p.Name)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want ErrNotExist", err)
	}
}
