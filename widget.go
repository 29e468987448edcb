package bramble

import (
	"fmt"
	"strings"
)

// Widget is the capability set every node in the tree implements. T is the
// application state shared by the whole tree.
//
// Only Event may mutate *T. The other passes receive the same pointer for
// reading.
type Widget[T any] interface {
	// Layout computes the widget size given the available space. It must be
	// idempotent for identical inputs within a frame.
	Layout(parent Size, ctx LayoutCtx, data *T, env *Env) Size
	// Paint emits drawing commands. It must not change interaction state.
	Paint(canvas Canvas, data *T)
	// Update runs once per frame before layout.
	Update(ctx Context, data *T)
	// Event processes an input event. Returning Break stops the event from
	// reaching the remaining siblings.
	Event(ev WidgetEvent, ctx Context, data *T) ControlFlow
	// Lifecycle processes a one-shot notification.
	Lifecycle(lc WidgetLifecycle, ctx Context, data *T, env *Env)
	// Frame runs after the frame has been submitted to the renderer.
	Frame(surfaces Surfaces, data *T)
	// Cursor returns the cursor to show while the widget is hot, or "".
	Cursor() string
	// Contains is a fine-grained hit test in local coordinates. The
	// enclosing Pod has already checked the bounding box.
	Contains(p Point) bool
	// Display describes the widget for debugging. An empty string falls
	// back to the Go type name.
	Display() string
}

// WidgetBase provides the default implementation of every Widget method
// except Paint. Embed it in concrete widgets.
type WidgetBase[T any] struct{}

// Layout fills the available space.
func (WidgetBase[T]) Layout(parent Size, _ LayoutCtx, _ *T, _ *Env) Size { return parent }

// Update does nothing.
func (WidgetBase[T]) Update(Context, *T) {}

// Event ignores the event.
func (WidgetBase[T]) Event(WidgetEvent, Context, *T) ControlFlow { return Continue }

// Lifecycle does nothing.
func (WidgetBase[T]) Lifecycle(WidgetLifecycle, Context, *T, *Env) {}

// Frame does nothing.
func (WidgetBase[T]) Frame(Surfaces, *T) {}

// Cursor declares no cursor.
func (WidgetBase[T]) Cursor() string { return "" }

// Contains returns true; widgets without holes need nothing finer than the
// Pod's bounds check.
func (WidgetBase[T]) Contains(Point) bool { return true }

// Display returns "".
func (WidgetBase[T]) Display() string { return "" }

// DisplayName returns w.Display(), or the short Go type name of w.
func DisplayName[T any](w Widget[T]) string {
	if s := w.Display(); s != "" {
		return s
	}
	name := strings.TrimPrefix(fmt.Sprintf("%T", w), "*")
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
