package iconic

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Frames int     `yaml:"frames"`
}

// Script replays injected pointer input and screenshots across frames.
// Attach it to a Scene with SetScript.
//
// Scripts are YAML (or JSON, which is valid YAML):
//
//	steps:
//	  - action: screenshot
//	    label: initial
//	  - action: click
//	    x: 100
//	    y: 200
//	  - action: wait
//	    frames: 30
//
// Supported actions are click, press, release, wait and screenshot.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses an input script.
func LoadScript(data []byte) (*Script, error) {
	var doc struct {
		Steps []scriptStep `yaml:"steps"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("iconic: parse script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, errors.New("iconic: parse script: no steps")
	}
	for i, st := range doc.Steps {
		switch st.Action {
		case "click", "press", "release", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("iconic: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: doc.Steps}, nil
}

// SetScript attaches a script to the scene. It is stepped at the start of
// every Update, before input is processed. nil detaches it.
func (s *Scene) SetScript(sc *Script) {
	s.script = sc
}

// Done reports whether every step has run.
func (sc *Script) Done() bool {
	return sc.done
}

// step advances the script by one frame.
func (sc *Script) step(s *Scene) {
	if sc.done {
		return
	}
	// Let queued input drain before the next step.
	if len(s.injectQueue) > 0 {
		return
	}
	if sc.waitCount > 0 {
		sc.waitCount--
		return
	}
	if sc.cursor >= len(sc.steps) {
		sc.done = true
		return
	}

	st := sc.steps[sc.cursor]
	sc.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "press":
		s.InjectPress(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			sc.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if sc.cursor >= len(sc.steps) && sc.waitCount == 0 && len(s.injectQueue) == 0 {
		sc.done = true
	}
}
