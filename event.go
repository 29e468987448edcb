package bramble

import (
	"fmt"
	"time"
)

// ControlFlow tells a container whether an event should keep propagating to
// the remaining siblings.
type ControlFlow uint8

const (
	Continue ControlFlow = iota // keep propagating
	Break                       // consumed; stop at the current container level
)

func (f ControlFlow) String() string {
	if f == Break {
		return "break"
	}
	return "continue"
}

// WidgetEvent is an input or lifecycle notification delivered through the
// widget tree. The set of implementations is closed.
type WidgetEvent interface {
	widgetEvent()
}

// MouseDown fires when a pointer button is pressed.
type MouseDown struct {
	Button MouseButton
}

// MouseUp fires when a pointer button is released.
type MouseUp struct {
	Button MouseButton
}

// MouseMove fires when the pointer moves. Pos is in the receiver's parent
// coordinate space.
type MouseMove struct {
	Pos Point
}

// MouseScroll carries a scroll wheel delta.
type MouseScroll struct {
	Delta Point
}

// MouseEnter is synthesized by a Pod when the pointer enters its bounds.
// The platform layer never produces it.
type MouseEnter struct{}

// MouseExit is synthesized by a Pod when the pointer leaves its bounds.
type MouseExit struct{}

// Resized fires when the window changes size. Size is in UI units.
type Resized struct {
	Size Size
}

// Focus fires when the window gains or loses focus.
type Focus struct {
	Focused bool
}

// KeyDown fires when a key is pressed, and again with Repeat set while it
// is held.
type KeyDown struct {
	Key       Key
	Modifiers KeyModifiers
	Repeat    bool
}

// KeyUp fires when a key is released.
type KeyUp struct {
	Key       Key
	Modifiers KeyModifiers
}

// CharacterReceived carries a text character typed by the user.
type CharacterReceived struct {
	Char      rune
	Modifiers KeyModifiers
}

// Paste carries clipboard text. OK is false when the clipboard was empty or
// unavailable.
type Paste struct {
	Text string
	OK   bool
}

// Tick is dispatched once at the start of every frame.
type Tick struct {
	Delta time.Duration
}

// FrameEnd marks the end of a frame.
type FrameEnd struct{}

func (MouseDown) widgetEvent()         {}
func (MouseUp) widgetEvent()           {}
func (MouseMove) widgetEvent()         {}
func (MouseScroll) widgetEvent()       {}
func (MouseEnter) widgetEvent()        {}
func (MouseExit) widgetEvent()         {}
func (Resized) widgetEvent()           {}
func (Focus) widgetEvent()             {}
func (KeyDown) widgetEvent()           {}
func (KeyUp) widgetEvent()             {}
func (CharacterReceived) widgetEvent() {}
func (Paste) widgetEvent()             {}
func (Tick) widgetEvent()              {}
func (FrameEnd) widgetEvent()          {}

// isInput reports whether ev originates from user input, as opposed to
// frame bookkeeping.
func isInput(ev WidgetEvent) bool {
	switch ev.(type) {
	case Tick, FrameEnd, Resized:
		return false
	}
	return true
}

// eventString formats an event for logging.
func eventString(ev WidgetEvent) string {
	return fmt.Sprintf("%T%+v", ev, ev)
}

// WidgetLifecycle is a one-shot notification delivered through the tree.
type WidgetLifecycle interface {
	widgetLifecycle()
}

// Initialized is delivered once, before the first frame, with the textures
// loaded into the renderer.
type Initialized struct {
	Textures map[TextureID]TextureInfo
}

func (Initialized) widgetLifecycle() {}
