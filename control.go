package bramble

import "fmt"

// Controller reacts to events on behalf of a widget without being a widget
// itself.
type Controller[T any] interface {
	Event(ev WidgetEvent, ctx Context, data *T) ControlFlow
}

// Control attaches a Controller to a widget. The widget sees every event
// first, then the controller. The result is Break if either returns Break.
type Control[T any] struct {
	Widget[T]
	controller Controller[T]
}

// NewControl attaches c to w.
func NewControl[T any](w Widget[T], c Controller[T]) *Control[T] {
	return &Control[T]{Widget: w, controller: c}
}

func (c *Control[T]) Event(ev WidgetEvent, ctx Context, data *T) ControlFlow {
	flow := c.Widget.Event(ev, ctx, data)
	if c.controller.Event(ev, ctx, data) == Break {
		return Break
	}
	return flow
}

func (c *Control[T]) Display() string {
	return fmt.Sprintf("Control(%s)", DisplayName(c.Widget))
}

// Click runs an action when a press is released over the same widget.
type Click[T any] struct {
	action func(ctx Context, data *T)
}

// NewClick returns a click controller.
func NewClick[T any](action func(ctx Context, data *T)) *Click[T] {
	return &Click[T]{action: action}
}

func (c *Click[T]) Event(ev WidgetEvent, ctx Context, data *T) ControlFlow {
	if _, ok := ev.(MouseUp); ok && ctx.Hot && ctx.Active {
		c.action(ctx, data)
		return Break
	}
	return Continue
}

// OnClick attaches a click action to w.
func OnClick[T any](w Widget[T], action func(ctx Context, data *T)) *Control[T] {
	return NewControl[T](w, NewClick(action))
}

// Hover runs an action when the pointer enters or leaves a widget.
type Hover[T any] struct {
	action func(hot bool, ctx Context, data *T)
}

// NewHover returns a hover controller.
func NewHover[T any](action func(hot bool, ctx Context, data *T)) *Hover[T] {
	return &Hover[T]{action: action}
}

func (h *Hover[T]) Event(ev WidgetEvent, ctx Context, data *T) ControlFlow {
	switch ev.(type) {
	case MouseEnter:
		h.action(true, ctx, data)
	case MouseExit:
		h.action(false, ctx, data)
	}
	return Continue
}

// OnHover attaches a hover action to w.
func OnHover[T any](w Widget[T], action func(hot bool, ctx Context, data *T)) *Control[T] {
	return NewControl[T](w, NewHover(action))
}

// Interactive overrides the cursor of a widget.
type Interactive[T any] struct {
	Widget[T]
	cursor string
}

// WithCursor shows the named cursor while w is hot.
func WithCursor[T any](w Widget[T], cursor string) *Interactive[T] {
	return &Interactive[T]{Widget: w, cursor: cursor}
}

func (i *Interactive[T]) Cursor() string {
	return i.cursor
}

func (i *Interactive[T]) Display() string {
	return fmt.Sprintf("Interactive(%s)", DisplayName(i.Widget))
}
