package bramble

import "fmt"

// HStack lays its children out left to right, separated by Spacing, and
// aligned to the top.
type HStack[T any] struct {
	WidgetBase[T]
	Spacing float64

	children children[T]
}

// NewHStack returns a horizontal stack of the given widgets.
func NewHStack[T any](widgets ...Widget[T]) *HStack[T] {
	return &HStack[T]{children: podsOf(widgets)}
}

// WithSpacing sets the gap between children.
func (h *HStack[T]) WithSpacing(spacing float64) *HStack[T] {
	h.Spacing = spacing
	return h
}

// Children returns the child Pods, left first.
func (h *HStack[T]) Children() []*Pod[T, Widget[T]] {
	return h.children
}

func (h *HStack[T]) Layout(parent Size, ctx LayoutCtx, data *T, env *Env) Size {
	var x, height float64
	for i, w := range h.children {
		if i > 0 {
			x += h.Spacing
		}
		s := w.Layout(Size{max(0, parent.W-x), parent.H}, ctx, data, env)
		w.Offset = Point{X: x}
		x += s.W
		height = max(height, s.H)
	}
	return Size{x, height}
}

func (h *HStack[T]) Paint(canvas Canvas, data *T) {
	h.children.paint(canvas, data)
}

func (h *HStack[T]) Update(ctx Context, data *T) {
	h.children.update(ctx, data)
}

func (h *HStack[T]) Event(ev WidgetEvent, ctx Context, data *T) ControlFlow {
	return h.children.event(ev, ctx, data)
}

func (h *HStack[T]) Lifecycle(lc WidgetLifecycle, ctx Context, data *T, env *Env) {
	h.children.lifecycle(lc, ctx, data, env)
}

func (h *HStack[T]) Frame(surfaces Surfaces, data *T) {
	h.children.frame(surfaces, data)
}

func (h *HStack[T]) Cursor() string {
	return h.children.cursor()
}

func (h *HStack[T]) Contains(p Point) bool {
	return h.children.contains(p)
}

func (h *HStack[T]) Display() string {
	return fmt.Sprintf("HStack(%d)", len(h.children))
}
