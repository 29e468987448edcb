package bramble

// children is the child list of a container. Passes fan out in child order;
// events are routed top-down, that is in reverse child order.
type children[T any] []*Pod[T, Widget[T]]

func podsOf[T any](widgets []Widget[T]) children[T] {
	c := make(children[T], 0, len(widgets))
	for _, w := range widgets {
		c = append(c, NewPod[T](w))
	}
	return c
}

func (c children[T]) update(ctx Context, data *T) {
	for _, w := range c {
		w.Update(ctx, data)
	}
}

func (c children[T]) paint(canvas Canvas, data *T) {
	for _, w := range c {
		w.Paint(canvas, data)
	}
}

func (c children[T]) lifecycle(lc WidgetLifecycle, ctx Context, data *T, env *Env) {
	for _, w := range c {
		w.Lifecycle(lc, ctx, data, env)
	}
}

func (c children[T]) frame(surfaces Surfaces, data *T) {
	for _, w := range c {
		w.Frame(surfaces, data)
	}
}

// topmost returns the last child containing p, or nil.
func (c children[T]) topmost(p Point) *Pod[T, Widget[T]] {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Contains(p) {
			return c[i]
		}
	}
	return nil
}

// event routes ev to the children.
//
// A move goes only to the topmost child under the pointer, so at most one
// child is hot at a time. Any other hot child is sent MouseExit first, so
// hover handoff is observed as exit then enter. An enter coming down from an
// ancestor follows the same exclusivity. Everything else is offered to each
// child from the top until one of them returns Break.
func (c children[T]) event(ev WidgetEvent, ctx Context, data *T) ControlFlow {
	switch e := ev.(type) {
	case MouseMove:
		hot := c.topmost(e.Pos)
		for _, w := range c {
			if w != hot && w.Hot {
				w.Event(MouseExit{}, ctx, data)
			}
		}
		if hot == nil {
			return Continue
		}
		return hot.Event(ev, ctx, data)

	case MouseEnter:
		if hot := c.topmost(ctx.Cursor); hot != nil {
			return hot.Event(ev, ctx, data)
		}
		return Continue
	}

	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Event(ev, ctx, data) == Break {
			return Break
		}
	}
	return Continue
}

func (c children[T]) contains(p Point) bool {
	return c.topmost(p) != nil
}

// cursor returns the cursor of the topmost hot child that declares one.
func (c children[T]) cursor() string {
	for i := len(c) - 1; i >= 0; i-- {
		if !c[i].Hot {
			continue
		}
		if cur := c[i].Cursor(); cur != "" {
			return cur
		}
	}
	return ""
}
