package bramble

import "fmt"

// Align positions a single child inside the available space. X and Y are
// fractions: 0 is left/top, 0.5 is centered, 1 is right/bottom.
type Align[T any] struct {
	WidgetBase[T]
	X, Y float64

	child children[T]
}

// NewAlign returns an Align placing w at the fractional position (x, y).
func NewAlign[T any](w Widget[T], x, y float64) *Align[T] {
	return &Align[T]{X: x, Y: y, child: podsOf([]Widget[T]{w})}
}

// Center centers w.
func Center[T any](w Widget[T]) *Align[T] { return NewAlign(w, 0.5, 0.5) }

// Left aligns w to the left edge, vertically centered.
func Left[T any](w Widget[T]) *Align[T] { return NewAlign(w, 0, 0.5) }

// Right aligns w to the right edge, vertically centered.
func Right[T any](w Widget[T]) *Align[T] { return NewAlign(w, 1, 0.5) }

// Top aligns w to the top edge, horizontally centered.
func Top[T any](w Widget[T]) *Align[T] { return NewAlign(w, 0.5, 0) }

// Bottom aligns w to the bottom edge, horizontally centered.
func Bottom[T any](w Widget[T]) *Align[T] { return NewAlign(w, 0.5, 1) }

// Child returns the child Pod.
func (a *Align[T]) Child() *Pod[T, Widget[T]] {
	return a.child[0]
}

// Layout places the child and fills the available space.
func (a *Align[T]) Layout(parent Size, ctx LayoutCtx, data *T, env *Env) Size {
	c := a.child[0]
	s := c.Layout(parent, ctx, data, env)
	c.Offset = Point{
		X: (parent.W - s.W) * a.X,
		Y: (parent.H - s.H) * a.Y,
	}
	return parent
}

func (a *Align[T]) Paint(canvas Canvas, data *T) {
	a.child.paint(canvas, data)
}

func (a *Align[T]) Update(ctx Context, data *T) {
	a.child.update(ctx, data)
}

func (a *Align[T]) Event(ev WidgetEvent, ctx Context, data *T) ControlFlow {
	return a.child.event(ev, ctx, data)
}

func (a *Align[T]) Lifecycle(lc WidgetLifecycle, ctx Context, data *T, env *Env) {
	a.child.lifecycle(lc, ctx, data, env)
}

func (a *Align[T]) Frame(surfaces Surfaces, data *T) {
	a.child.frame(surfaces, data)
}

func (a *Align[T]) Cursor() string {
	return a.child.cursor()
}

func (a *Align[T]) Contains(p Point) bool {
	return a.child.contains(p)
}

func (a *Align[T]) Display() string {
	return fmt.Sprintf("Align(%s)", a.child[0].Display())
}
