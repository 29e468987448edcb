package bramble

import "fmt"

// SizedBox gives its widget a fixed size. A zero dimension means "use the
// available space" for that axis.
type SizedBox[T any] struct {
	Widget[T]
	Width, Height float64
}

// Sized wraps w in a SizedBox of size s.
func Sized[T any](w Widget[T], s Size) *SizedBox[T] {
	return &SizedBox[T]{Widget: w, Width: s.W, Height: s.H}
}

// Layout lays the widget out at the fixed size and reports that size.
func (b *SizedBox[T]) Layout(parent Size, ctx LayoutCtx, data *T, env *Env) Size {
	s := parent
	if b.Width > 0 {
		s.W = b.Width
	}
	if b.Height > 0 {
		s.H = b.Height
	}
	b.Widget.Layout(s, ctx, data, env)
	return s
}

func (b *SizedBox[T]) Display() string {
	return fmt.Sprintf("SizedBox(%s)", DisplayName(b.Widget))
}

// Padded insets its widget by a padding.
type Padded[T any] struct {
	WidgetBase[T]
	Padding Padding

	child children[T]
}

// Pad wraps w with padding p.
func Pad[T any](w Widget[T], p Padding) *Padded[T] {
	return &Padded[T]{Padding: p, child: podsOf([]Widget[T]{w})}
}

func (p *Padded[T]) Layout(parent Size, ctx LayoutCtx, data *T, env *Env) Size {
	inner := RectOf(parent).Inset(p.Padding)
	c := p.child[0]
	s := c.Layout(inner.Size(), ctx, data, env)
	c.Offset = inner.Origin()
	return Size{
		W: s.W + p.Padding.Left + p.Padding.Right,
		H: s.H + p.Padding.Top + p.Padding.Bottom,
	}
}

func (p *Padded[T]) Paint(canvas Canvas, data *T) { p.child.paint(canvas, data) }

func (p *Padded[T]) Update(ctx Context, data *T) { p.child.update(ctx, data) }

func (p *Padded[T]) Event(ev WidgetEvent, ctx Context, data *T) ControlFlow {
	return p.child.event(ev, ctx, data)
}

func (p *Padded[T]) Lifecycle(lc WidgetLifecycle, ctx Context, data *T, env *Env) {
	p.child.lifecycle(lc, ctx, data, env)
}

func (p *Padded[T]) Frame(surfaces Surfaces, data *T) { p.child.frame(surfaces, data) }

func (p *Padded[T]) Cursor() string { return p.child.cursor() }

func (p *Padded[T]) Contains(pt Point) bool { return p.child.contains(pt) }
