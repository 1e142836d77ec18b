// Package prefab loads icon view definitions from YAML files and watches
// them for changes.
//
// A prefab file looks like:
//
//	name: loading
//	icon: Spinner
//	color: "#3399ff"
//	size: 48
//	x: 100
//	y: 80
//	spin: true
//	spin_duration: 1.5
//	rotation: 0
//	flip: Normal
package prefab

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/phanxgames/iconic"
	"gopkg.in/yaml.v3"
)

// ErrUnknownIcon is returned when a prefab names an icon that does not exist.
var ErrUnknownIcon = errors.New("prefab: unknown icon")

// IconPrefab describes an IconView.
type IconPrefab struct {
	Name         string  `yaml:"name"`
	Icon         string  `yaml:"icon"`
	Color        string  `yaml:"color"`
	Size         float64 `yaml:"size"`
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Spin         bool    `yaml:"spin"`
	SpinDuration float64 `yaml:"spin_duration"`
	Rotation     float64 `yaml:"rotation"`
	Flip         string  `yaml:"flip"`
}

// Load reads and parses the prefab at filename.
func Load(filename string) (*IconPrefab, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("prefab: load %s: %w", filename, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("prefab: %s: %w", filename, err)
	}
	return p, nil
}

// Parse decodes a prefab from YAML and validates it.
func Parse(data []byte) (*IconPrefab, error) {
	var p IconPrefab
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("prefab: unmarshal: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that every named value resolves.
func (p *IconPrefab) Validate() error {
	if _, err := p.icon(); err != nil {
		return err
	}
	if _, err := p.flip(); err != nil {
		return err
	}
	if p.Color != "" {
		if _, err := ParseColor(p.Color); err != nil {
			return err
		}
	}
	if p.Size < 0 {
		return fmt.Errorf("prefab: negative size %v", p.Size)
	}
	if p.SpinDuration < 0 {
		return fmt.Errorf("prefab: negative spin_duration %v", p.SpinDuration)
	}
	return nil
}

// Build creates a new IconView from the prefab.
func (p *IconPrefab) Build(font *iconic.GlyphFont) (*iconic.IconView, error) {
	icon, err := p.icon()
	if err != nil {
		return nil, err
	}
	v := iconic.NewIconView(p.Name, icon, font)
	if err := p.Apply(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Apply copies the prefab onto v. Zero size, color and spin_duration keep
// v's current values. Spin duration is applied before spin so a spinning
// view starts at the right speed.
func (p *IconPrefab) Apply(v *iconic.IconView) error {
	if err := p.Validate(); err != nil {
		return err
	}
	icon, _ := p.icon()
	flip, _ := p.flip()

	v.Name = p.Name
	v.X, v.Y = p.X, p.Y
	v.SetIcon(icon)
	if p.Color != "" {
		c, _ := ParseColor(p.Color)
		v.SetColor(c)
	}
	if p.Size > 0 {
		v.SetSize(p.Size)
	}
	if p.SpinDuration > 0 {
		v.SetSpinDuration(p.SpinDuration)
	}
	v.SetRotation(p.Rotation)
	v.SetFlipOrientation(flip)
	v.SetSpin(p.Spin)
	return nil
}

func (p *IconPrefab) icon() (iconic.Icon, error) {
	icon, ok := iconic.IconByName(p.Icon)
	if !ok {
		return iconic.IconNone, fmt.Errorf("%w %q", ErrUnknownIcon, p.Icon)
	}
	return icon, nil
}

func (p *IconPrefab) flip() (iconic.FlipOrientation, error) {
	if p.Flip == "" {
		return iconic.FlipNormal, nil
	}
	f, err := iconic.ParseFlipOrientation(p.Flip)
	if err != nil {
		return iconic.FlipNormal, fmt.Errorf("prefab: %w", err)
	}
	return f, nil
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa" (the leading '#' is
// optional).
func ParseColor(s string) (iconic.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return iconic.Color{}, fmt.Errorf("prefab: invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return iconic.Color{}, fmt.Errorf("prefab: invalid color %q: %w", s, err)
	}
	return iconic.Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
