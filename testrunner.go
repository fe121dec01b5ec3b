package lightbox

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a gesture script.
type testStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Dir      float64 `json:"dir,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	FromDist float64 `json:"fromDist,omitempty"`
	ToDist   float64 `json:"toDist,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a gesture script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner replays a JSON gesture script against a Viewer across frames,
// for automated visual testing. Supported actions: "wheel", "click",
// "drag", "pinch", "close", "wait", and "screenshot". Attach to a Viewer
// via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON gesture script and returns a TestRunner
// ready to be attached via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. The runner advances one step per
// frame from Viewer.Update, before input processing.
func (v *Viewer) SetTestRunner(runner *TestRunner) {
	v.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(v *Viewer) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if v.PendingInjections() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		v.Screenshot(st.Label)
	case "wheel":
		v.InjectWheel(st.X, st.Y, st.Dir)
	case "click":
		v.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		v.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "pinch":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		v.InjectPinch(st.X, st.Y, st.FromDist, st.ToDist, frames)
	case "close":
		v.RequestClose()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && v.PendingInjections() == 0 {
		r.done = true
	}
}
