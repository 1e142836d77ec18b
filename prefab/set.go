package prefab

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/phanxgames/iconic"
	"go.uber.org/zap"
)

// Set keeps one IconView per prefab file in a Scene and re-applies a file
// when it changes.
type Set struct {
	scene *iconic.Scene
	font  *iconic.GlyphFont
	views map[string]*iconic.IconView
}

// NewSet creates an empty set that adds its views to scene.
func NewSet(scene *iconic.Scene, font *iconic.GlyphFont) *Set {
	return &Set{scene: scene, font: font, views: make(map[string]*iconic.IconView)}
}

// LoadDir loads every .yaml and .yml file in dir, in name order.
// Loading stops at the first invalid file.
func (s *Set) LoadDir(dir string) error {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		m, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return fmt.Errorf("prefab: glob %s: %w", dir, err)
		}
		files = append(files, m...)
	}
	sort.Strings(files)
	for _, f := range files {
		if err := s.Reload(f); err != nil {
			return err
		}
	}
	return nil
}

// Reload loads filename and applies it to its view, creating and adding the
// view on first load. An invalid file leaves the existing view untouched.
func (s *Set) Reload(filename string) error {
	p, err := Load(filename)
	if err != nil {
		return err
	}
	if v, ok := s.views[filename]; ok {
		if err := p.Apply(v); err != nil {
			return err
		}
		iconic.Logger().Debug("prefab reloaded", zap.String("file", filename))
		return nil
	}
	v, err := p.Build(s.font)
	if err != nil {
		return err
	}
	s.views[filename] = v
	s.scene.Add(v.Element)
	iconic.Logger().Debug("prefab loaded", zap.String("file", filename), zap.String("name", v.Name))
	return nil
}

// Remove disposes the view built from filename, taking it out of the scene
// and stopping its spin. It reports whether a view existed.
func (s *Set) Remove(filename string) bool {
	v, ok := s.views[filename]
	if !ok {
		return false
	}
	delete(s.views, filename)
	v.Dispose()
	iconic.Logger().Debug("prefab removed", zap.String("file", filename))
	return true
}

// Sync brings the set in line with filename on disk: a missing file removes
// its view, anything else is reloaded.
func (s *Set) Sync(filename string) error {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		s.Remove(filename)
		return nil
	}
	return s.Reload(filename)
}

// View returns the view built from filename.
func (s *Set) View(filename string) (*iconic.IconView, bool) {
	v, ok := s.views[filename]
	return v, ok
}

// Len returns the number of views.
func (s *Set) Len() int {
	return len(s.views)
}
