package bramble

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key repeat timing, in ticks.
const (
	keyRepeatDelay    = 30
	keyRepeatInterval = 3
)

var mouseButtons = [...]struct {
	ebiten ebiten.MouseButton
	button MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// inputSnapshot is the raw input observed in one tick.
type inputSnapshot struct {
	cursor   Point
	focused  bool
	wheel    Point
	pressed  [len(mouseButtons)]bool // just pressed
	released [len(mouseButtons)]bool // just released
	keysDown []Key
	repeats  []Key
	keysUp   []Key
	chars    []rune
	mods     KeyModifiers
}

// Input translates platform input into widget events. MouseEnter and
// MouseExit are never produced here; Pods synthesize them.
type Input struct {
	// Scale divides window coordinates into logical coordinates.
	Scale float64
	// Clipboard, when set, supplies the text for Paste events.
	Clipboard func() (string, bool)

	snap      inputSnapshot
	cursor    Point
	hasCursor bool
	focused   bool
}

// NewInput returns an input translator for a window with the given UI scale.
func NewInput(scale float64) *Input {
	if scale <= 0 {
		scale = 1
	}
	return &Input{Scale: scale, focused: true}
}

// Poll reads the current Ebitengine input state and passes the resulting
// events to push in arrival order.
func (in *Input) Poll(push func(WidgetEvent)) {
	s := &in.snap
	x, y := ebiten.CursorPosition()
	s.cursor = Point{X: float64(x), Y: float64(y)}
	s.focused = ebiten.IsFocused()
	wx, wy := ebiten.Wheel()
	s.wheel = Point{X: wx, Y: wy}
	for i, b := range mouseButtons {
		s.pressed[i] = inpututil.IsMouseButtonJustPressed(b.ebiten)
		s.released[i] = inpututil.IsMouseButtonJustReleased(b.ebiten)
	}
	s.keysDown = inpututil.AppendJustPressedKeys(s.keysDown[:0])
	s.repeats = s.repeats[:0]
	for _, k := range inpututil.AppendPressedKeys(nil) {
		if isRepeat(inpututil.KeyPressDuration(k)) {
			s.repeats = append(s.repeats, k)
		}
	}
	s.keysUp = inpututil.AppendJustReleasedKeys(s.keysUp[:0])
	s.chars = ebiten.AppendInputChars(s.chars[:0])
	s.mods = readModifiers()

	in.translate(s, push)
}

// isRepeat reports whether a key held for d ticks repeats this tick.
func isRepeat(d int) bool {
	return d > keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

// translate turns a snapshot into events.
func (in *Input) translate(s *inputSnapshot, push func(WidgetEvent)) {
	pos := Point{X: s.cursor.X / in.Scale, Y: s.cursor.Y / in.Scale}
	if !in.hasCursor || pos != in.cursor {
		in.cursor = pos
		in.hasCursor = true
		push(MouseMove{Pos: pos})
	}

	for i, b := range mouseButtons {
		if s.pressed[i] {
			push(MouseDown{Button: b.button})
		}
	}
	for i, b := range mouseButtons {
		if s.released[i] {
			push(MouseUp{Button: b.button})
		}
	}

	if s.wheel != (Point{}) {
		push(MouseScroll{Delta: s.wheel})
	}

	if s.focused != in.focused {
		in.focused = s.focused
		push(Focus{Focused: s.focused})
	}

	for _, k := range s.keysDown {
		if !knownKey(k) {
			continue
		}
		if k == ebiten.KeyInsert && s.mods&ModShift != 0 {
			push(in.paste())
			continue
		}
		push(KeyDown{Key: k, Modifiers: s.mods})
	}
	for _, k := range s.repeats {
		if knownKey(k) {
			push(KeyDown{Key: k, Modifiers: s.mods, Repeat: true})
		}
	}
	for _, k := range s.keysUp {
		if knownKey(k) {
			push(KeyUp{Key: k, Modifiers: s.mods})
		}
	}

	for _, r := range s.chars {
		push(CharacterReceived{Char: r, Modifiers: s.mods})
	}
}

func (in *Input) paste() Paste {
	if in.Clipboard == nil {
		return Paste{}
	}
	text, ok := in.Clipboard()
	return Paste{Text: text, OK: ok}
}

// knownKey reports whether k is a key bramble can deliver. Unknown keys are
// logged and dropped.
func knownKey(k Key) bool {
	if k < 0 || k > ebiten.KeyMax {
		logger.Debug("bramble: dropping unknown key", "key", int(k))
		return false
	}
	return true
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}
