package bramble

// Context is the per-pass snapshot handed to Update, Event and Lifecycle.
// It is a value: each nesting level derives a copy and never mutates its
// parent's.
type Context struct {
	// Transform is the composition of all ancestor offsets.
	Transform Transform
	// Cursor is the pointer position in the receiver's local space.
	Cursor Point
	// Surfaces are the off-screen render surfaces.
	Surfaces Surfaces
	// Hot reports whether the enclosing Pod is under the pointer.
	Hot bool
	// Active reports whether the enclosing Pod accepted a press that has not
	// been released yet.
	Active bool
}

// NewContext returns a root context with the given cursor position.
func NewContext(cursor Point, surfaces Surfaces) Context {
	return Context{
		Transform: Identity,
		Cursor:    cursor,
		Surfaces:  surfaces,
	}
}

// Offset returns a context translated by o.
func (c Context) Offset(o Point) Context {
	return c.Transformed(Translate(o))
}

// Transformed composes t into the accumulated transform and maps the cursor
// into the new local space.
func (c Context) Transformed(t Transform) Context {
	c.Transform = c.Transform.Mul(t)
	c.Cursor = t.Unapply(c.Cursor)
	return c
}

// WithHot returns a context with the hot flag set.
func (c Context) WithHot(hot bool) Context {
	c.Hot = hot
	return c
}

// WithActive returns a context with the active flag set.
func (c Context) WithActive(active bool) Context {
	c.Active = active
	return c
}

// LayoutCtx is the read-only snapshot handed to the layout pass.
type LayoutCtx struct {
	Fonts *FontRegistry
}

// NewLayoutCtx returns a layout context reading from fonts.
func NewLayoutCtx(fonts *FontRegistry) LayoutCtx {
	return LayoutCtx{Fonts: fonts}
}
