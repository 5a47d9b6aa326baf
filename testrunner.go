package mvc

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `yaml:"action"`
	Name   string `yaml:"name,omitempty"`
	Key    string `yaml:"key,omitempty"`
	Path   string `yaml:"path,omitempty"`
	Label  string `yaml:"label,omitempty"`
	Frames int    `yaml:"frames,omitempty"`

	key ebiten.Key
}

// testScript is the top-level structure of a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

// TestRunner sequences injected commands, keys and clicks across frames for
// automated UI tests. Attach to a Workspace via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a YAML (or JSON) test script:
//
//	steps:
//	  - {action: command, name: Increment}
//	  - {action: key, key: Space}
//	  - {action: click, path: CounterView/ResetButton}
//	  - {action: wait, frames: 3}
//	  - {action: screenshot, label: after-reset}
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case "command":
			if st.Name == "" {
				return nil, fmt.Errorf("parse test script: step %d: command without name", i)
			}
		case "key":
			if err := st.key.UnmarshalText([]byte(st.Key)); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
		case "click":
			if st.Path == "" {
				return nil, fmt.Errorf("parse test script: step %d: click without path", i)
			}
		case "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the workspace. The runner's step
// method is called from Workspace.Update before input is processed.
func (ws *Workspace) SetTestRunner(runner *TestRunner) {
	ws.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Workspace.Update.
func (r *TestRunner) step(ws *Workspace) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(ws.injectQueue) > 0 {
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
	case "command":
		ws.InjectCommand(st.Name)
	case "key":
		ws.InjectKey(st.key)
	case "click":
		ws.InjectClick(st.Path)
	case "screenshot":
		ws.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(ws.injectQueue) == 0 {
		r.done = true
	}
}
