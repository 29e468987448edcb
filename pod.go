package bramble

import "fmt"

// WidgetID identifies a Pod. IDs are only ever compared for equality.
type WidgetID uint64

// RootWidgetID is never assigned to a Pod.
const RootWidgetID WidgetID = 0

// widgetIDCounter is a plain counter (no atomic, bramble is single-threaded).
var widgetIDCounter uint64

func nextWidgetID() WidgetID {
	widgetIDCounter++
	return WidgetID(widgetIDCounter)
}

func (id WidgetID) String() string {
	return fmt.Sprintf("%d", uint64(id))
}

// Pod wraps a widget, giving it an identity, a cached size and offset, and
// hot/active interaction state. Pods do the rectangular half of hit testing
// and synthesize MouseEnter/MouseExit; the wrapped widget only answers
// Contains for non-rectangular shapes.
type Pod[T any, W Widget[T]] struct {
	ID     WidgetID
	Size   Size  // last computed layout size
	Offset Point // position in the parent's space, set by the parent
	Hot    bool  // pointer is over the hit region
	Active bool  // a press was accepted and not yet released

	widget W
}

// NewPod wraps w in a Pod with a fresh ID.
func NewPod[T any, W Widget[T]](w W) *Pod[T, W] {
	return &Pod[T, W]{
		ID:     nextWidgetID(),
		widget: w,
	}
}

// Widget returns the wrapped widget.
func (p *Pod[T, W]) Widget() W {
	return p.widget
}

// Bounds returns the Pod's rectangle in its own local space.
func (p *Pod[T, W]) Bounds() Rect {
	return RectOf(p.Size)
}

// context derives the child context: offset applied, flags overwritten with
// this Pod's own.
func (p *Pod[T, W]) context(parent Context) Context {
	return parent.Offset(p.Offset).WithHot(p.Hot).WithActive(p.Active)
}

// hit reports whether a point in local space is inside the hit region.
func (p *Pod[T, W]) hit(local Point) bool {
	return p.Bounds().Contains(local) && p.widget.Contains(local)
}

// Layout delegates to the widget and caches the resulting size.
func (p *Pod[T, W]) Layout(parent Size, ctx LayoutCtx, data *T, env *Env) Size {
	p.Size = p.widget.Layout(parent, ctx, data, env)
	return p.Size
}

// Paint paints the widget translated by the Pod offset. In debug mode a
// translucent rectangle marks the Pod bounds.
func (p *Pod[T, W]) Paint(canvas Canvas, data *T) {
	p.widget.Paint(canvas.Transformed(Translate(p.Offset)).WithSize(p.Size), data)

	if globalDebug {
		r := Rect{X: p.Offset.X, Y: p.Offset.Y, Width: p.Size.W, Height: p.Size.H}
		alpha := 0x11 / 255.0
		if p.Hot {
			alpha = 0x22 / 255.0
		}
		canvas.Fill(r, ColorGreen.WithAlpha(alpha))
		canvas.Stroke(r, 1, ColorGreen.WithAlpha(0x44/255.0))
	}
}

// Update delegates with the derived context.
func (p *Pod[T, W]) Update(ctx Context, data *T) {
	p.widget.Update(p.context(ctx), data)
}

// Event applies the hot/active state machine before delegating. The widget
// receives the flags as they were before the event changed them: an enter
// arrives with Hot unset, an exit with Hot still set, and a press or release
// with the previous Active.
func (p *Pod[T, W]) Event(ev WidgetEvent, ctx Context, data *T) ControlFlow {
	local := p.context(ctx)

	switch e := ev.(type) {
	case MouseEnter:
		// Already entered through another path.
		if p.Hot || !p.hit(local.Cursor) {
			return Continue
		}
		p.Hot = true
		return p.widget.Event(MouseEnter{}, local, data)

	case MouseExit:
		if !p.Hot {
			return Continue
		}
		p.Hot = false
		return p.widget.Event(MouseExit{}, local, data)

	case MouseMove:
		cursor := Translate(p.Offset).Unapply(e.Pos)
		local.Cursor = cursor

		if p.hit(cursor) {
			if p.Hot {
				return p.widget.Event(MouseMove{Pos: cursor}, local, data)
			}
			// First frame over the widget: it sees an enter, not a move.
			p.Hot = true
			return p.widget.Event(MouseEnter{}, local, data)
		}
		if p.Hot {
			p.Hot = false
			return p.widget.Event(MouseExit{}, local, data)
		}
		return Continue

	case MouseDown:
		// Presses only reach hot widgets.
		if !p.Hot {
			return Continue
		}
		p.Active = true
		return p.widget.Event(ev, local, data)

	case MouseUp:
		// Releases reach the widget that accepted the press, even when the
		// pointer has left it.
		if !p.Active {
			return Continue
		}
		p.Active = false
		return p.widget.Event(ev, local, data)
	}
	return p.widget.Event(ev, local, data)
}

// Lifecycle delegates with the derived context.
func (p *Pod[T, W]) Lifecycle(lc WidgetLifecycle, ctx Context, data *T, env *Env) {
	p.widget.Lifecycle(lc, p.context(ctx), data, env)
}

// Frame delegates.
func (p *Pod[T, W]) Frame(surfaces Surfaces, data *T) {
	p.widget.Frame(surfaces, data)
}

// Cursor returns the widget's cursor.
func (p *Pod[T, W]) Cursor() string {
	return p.widget.Cursor()
}

// Contains hit-tests a point given in the parent's space.
func (p *Pod[T, W]) Contains(pt Point) bool {
	return p.hit(pt.Sub(p.Offset))
}

// Display returns the widget's display name.
func (p *Pod[T, W]) Display() string {
	return DisplayName[T](p.widget)
}

func (p *Pod[T, W]) String() string {
	return fmt.Sprintf("%s#%s", p.Display(), p.ID)
}
