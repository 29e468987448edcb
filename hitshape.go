package bramble

// HitShape is a custom hit region in local coordinates.
type HitShape interface {
	Contains(p Point) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside the rectangle. Edges are inside.
func (r HitRect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether p lies inside or on the circle.
func (c HitCircle) Contains(p Point) bool {
	dx := p.X - c.CenterX
	dy := p.Y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Point
}

// Contains reports whether p lies inside the polygon using a cross-product
// sign test.
func (poly HitPolygon) Contains(p Point) bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}

	// The point must be on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		a := poly.Points[i]
		b := poly.Points[(i+1)%n]

		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// Shaped restricts the hit region of a widget to a shape, for widgets that
// are not rectangular.
type Shaped[T any] struct {
	Widget[T]
	Shape HitShape
}

// WithShape restricts w's hit region to shape.
func WithShape[T any](w Widget[T], shape HitShape) *Shaped[T] {
	return &Shaped[T]{Widget: w, Shape: shape}
}

// Contains requires the point to be inside both the shape and the widget.
func (s *Shaped[T]) Contains(p Point) bool {
	return s.Shape.Contains(p) && s.Widget.Contains(p)
}

type hitNone struct{}

func (hitNone) Contains(Point) bool { return false }

// Passive makes w invisible to the pointer. Events still reach it, but it
// never becomes hot and never hides the widgets below it.
func Passive[T any](w Widget[T]) *Shaped[T] {
	return WithShape(w, HitShape(hitNone{}))
}
