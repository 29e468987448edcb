package bramble

import "fmt"

// ZStack overlays its children. Every child is given the full available
// space; later children paint over earlier ones and receive input first.
type ZStack[T any] struct {
	WidgetBase[T]
	children children[T]
}

// NewZStack returns a stack of the given widgets, bottom first.
func NewZStack[T any](widgets ...Widget[T]) *ZStack[T] {
	return &ZStack[T]{children: podsOf(widgets)}
}

// Push adds a widget on top of the stack.
func (z *ZStack[T]) Push(w Widget[T]) *ZStack[T] {
	z.children = append(z.children, NewPod[T](w))
	return z
}

// Children returns the child Pods, bottom first.
func (z *ZStack[T]) Children() []*Pod[T, Widget[T]] {
	return z.children
}

func (z *ZStack[T]) Layout(parent Size, ctx LayoutCtx, data *T, env *Env) Size {
	for _, w := range z.children {
		w.Layout(parent, ctx, data, env)
	}
	return parent
}

func (z *ZStack[T]) Paint(canvas Canvas, data *T) {
	z.children.paint(canvas, data)
}

func (z *ZStack[T]) Update(ctx Context, data *T) {
	z.children.update(ctx, data)
}

func (z *ZStack[T]) Event(ev WidgetEvent, ctx Context, data *T) ControlFlow {
	return z.children.event(ev, ctx, data)
}

func (z *ZStack[T]) Lifecycle(lc WidgetLifecycle, ctx Context, data *T, env *Env) {
	z.children.lifecycle(lc, ctx, data, env)
}

func (z *ZStack[T]) Frame(surfaces Surfaces, data *T) {
	z.children.frame(surfaces, data)
}

func (z *ZStack[T]) Cursor() string {
	return z.children.cursor()
}

func (z *ZStack[T]) Contains(p Point) bool {
	return z.children.contains(p)
}

func (z *ZStack[T]) Display() string {
	return fmt.Sprintf("ZStack(%d)", len(z.children))
}
