package bramble

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Injector is the synthetic input surface of a Loop.
type Injector interface {
	InjectMove(x, y float64)
	InjectPress(x, y float64, button MouseButton)
	InjectRelease(x, y float64, button MouseButton)
	InjectClick(x, y float64)
	InjectDrag(fromX, fromY, toX, toY float64, steps int)
	InjectKey(k Key, mods KeyModifiers)
	InjectText(s string)
	Pending() int
}

// testStep is a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Button string  `json:"button,omitempty"`
	Key    string  `json:"key,omitempty"`
	Text   string  `json:"text,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type testScript struct {
	Steps []testStep `json:"steps"`
}

var errEmptyScript = errors.New("no steps")

// TestRunner plays a scripted sequence of input and screenshots, one step
// per frame.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("bramble: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("bramble: parse test script: %w", errEmptyScript)
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("bramble: parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st testStep) validate() error {
	switch st.Action {
	case "move", "click", "drag", "wait", "screenshot", "type":
		return nil
	case "press", "release":
		_, err := parseButton(st.Button)
		return err
	case "key":
		_, err := parseKey(st.Key)
		return err
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

// Done reports whether every step has run.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame. Steps wait for previously injected
// input to be consumed.
func (r *TestRunner) Step(in Injector, screenshot func(label string)) {
	if r.done || in.Pending() > 0 {
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
	case "move":
		in.InjectMove(st.X, st.Y)
	case "press":
		b, _ := parseButton(st.Button)
		in.InjectPress(st.X, st.Y, b)
	case "release":
		b, _ := parseButton(st.Button)
		in.InjectRelease(st.X, st.Y, b)
	case "click":
		in.InjectClick(st.X, st.Y)
	case "drag":
		in.InjectDrag(st.X, st.Y, st.ToX, st.ToY, st.Frames)
	case "key":
		k, _ := parseKey(st.Key)
		in.InjectKey(k, 0)
	case "type":
		in.InjectText(st.Text)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		if screenshot != nil {
			screenshot(st.Label)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Pending() == 0 {
		r.done = true
	}
}

func parseButton(name string) (MouseButton, error) {
	switch name {
	case "", "left":
		return MouseButtonLeft, nil
	case "right":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	}
	return 0, fmt.Errorf("unknown button %q", name)
}

var keyNames map[string]Key

// parseKey looks a key up by its Ebitengine name, such as "A" or "Enter".
func parseKey(name string) (Key, error) {
	if keyNames == nil {
		keyNames = make(map[string]Key, int(ebiten.KeyMax)+1)
		for k := Key(0); k <= ebiten.KeyMax; k++ {
			keyNames[k.String()] = k
		}
	}
	k, ok := keyNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}
