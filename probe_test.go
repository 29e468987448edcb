package bramble

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
)

// trace is the application state of probe trees: a log of what widgets saw.
type trace struct {
	entries []string
}

func (tr *trace) add(format string, args ...any) {
	tr.entries = append(tr.entries, fmt.Sprintf(format, args...))
}

func (tr *trace) reset() {
	tr.entries = tr.entries[:0]
}

// probe records the events it receives and answers with flow.
type probe struct {
	WidgetBase[trace]
	name   string
	flow   ControlFlow
	ticks  bool // record Tick events
	passes bool // record update/layout/paint/frame passes
	flags  bool // append the context flags to event entries

	hot, active bool // flags of the last context seen
	cursor      Point
}

func newProbe(name string) *probe {
	return &probe{name: name}
}

func (p *probe) Event(ev WidgetEvent, ctx Context, tr *trace) ControlFlow {
	if _, ok := ev.(Tick); ok && !p.ticks {
		return Continue
	}
	p.hot, p.active, p.cursor = ctx.Hot, ctx.Active, ctx.Cursor
	if p.flags {
		tr.add("%s:%s hot=%t active=%t", p.name, eventKind(ev), ctx.Hot, ctx.Active)
		return p.flow
	}
	tr.add("%s:%s", p.name, eventKind(ev))
	return p.flow
}

func (p *probe) Lifecycle(lc WidgetLifecycle, _ Context, tr *trace, _ *Env) {
	if _, ok := lc.(Initialized); ok {
		tr.add("%s:init", p.name)
	}
}

func (p *probe) Update(_ Context, tr *trace) {
	if p.passes {
		tr.add("%s:update", p.name)
	}
}

func (p *probe) Layout(parent Size, _ LayoutCtx, tr *trace, _ *Env) Size {
	if p.passes {
		tr.add("%s:layout", p.name)
	}
	return parent
}

func (p *probe) Paint(canvas Canvas, tr *trace) {
	if p.passes {
		tr.add("%s:paint", p.name)
	}
}

func (p *probe) Frame(_ Surfaces, tr *trace) {
	if p.passes {
		tr.add("%s:frame", p.name)
	}
}

func (p *probe) Display() string { return p.name }

func eventKind(ev WidgetEvent) string {
	switch e := ev.(type) {
	case MouseEnter:
		return "enter"
	case MouseExit:
		return "exit"
	case MouseMove:
		return fmt.Sprintf("move(%g,%g)", e.Pos.X, e.Pos.Y)
	case MouseDown:
		return "down:" + e.Button.String()
	case MouseUp:
		return "up:" + e.Button.String()
	case MouseScroll:
		return "scroll"
	case Tick:
		return "tick"
	case Resized:
		return fmt.Sprintf("resized(%gx%g)", e.Size.W, e.Size.H)
	case KeyDown:
		return "keydown:" + e.Key.String()
	case KeyUp:
		return "keyup:" + e.Key.String()
	case CharacterReceived:
		return "char:" + string(e.Char)
	case Focus:
		return fmt.Sprintf("focus:%v", e.Focused)
	}
	return eventString(ev)
}

// sized gives a probe a fixed size.
func sized(p *probe, w, h float64) Widget[trace] {
	return Sized[trace](p, Size{W: w, H: h})
}

func assertEntries(t *testing.T, tr *trace, want ...string) {
	t.Helper()
	if len(tr.entries) != len(want) {
		t.Fatalf("entries = %q, want %q", tr.entries, want)
	}
	for i := range want {
		if tr.entries[i] != want[i] {
			t.Fatalf("entries = %q, want %q", tr.entries, want)
		}
	}
}

func quietLogs(t *testing.T) {
	t.Helper()
	SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { SetLogger(nil) })
}

// newTestLoop runs root in a headless window of the given size.
func newTestLoop(root Widget[trace], w, h float64) (*Loop[trace], *HeadlessPlatform, *trace) {
	tr := &trace{}
	platform := NewHeadlessPlatform(Size{W: w, H: h})
	l := NewLoop(root, tr, LoopConfig{Platform: platform})
	l.Init()
	tr.reset()
	return l, platform, tr
}
