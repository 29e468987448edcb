package bramble

import "github.com/hajimehoshi/ebiten/v2"

// Transform is a 2D affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Transform [6]float64

// Identity is the identity transform.
var Identity = Transform{1, 0, 0, 1, 0, 0}

// Translate returns a translation by p.
func Translate(p Point) Transform {
	return Transform{1, 0, 0, 1, p.X, p.Y}
}

// Scale returns a scale by sx, sy.
func Scale(sx, sy float64) Transform {
	return Transform{sx, 0, 0, sy, 0, 0}
}

// Mul returns t * c, the transform that applies c first and then t.
func (t Transform) Mul(c Transform) Transform {
	return Transform{
		t[0]*c[0] + t[2]*c[1],
		t[1]*c[0] + t[3]*c[1],
		t[0]*c[2] + t[2]*c[3],
		t[1]*c[2] + t[3]*c[3],
		t[0]*c[4] + t[2]*c[5] + t[4],
		t[1]*c[4] + t[3]*c[5] + t[5],
	}
}

// Inverse computes the inverse of t.
// Returns the identity matrix if t is singular (determinant near 0).
func (t Transform) Inverse() Transform {
	det := t[0]*t[3] - t[2]*t[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity
	}
	invDet := 1.0 / det
	a := t[3] * invDet
	b := -t[1] * invDet
	c := -t[2] * invDet
	d := t[0] * invDet
	return Transform{
		a, b, c, d,
		-(a*t[4] + c*t[5]),
		-(b*t[4] + d*t[5]),
	}
}

// Apply maps p through t.
func (t Transform) Apply(p Point) Point {
	return Point{t[0]*p.X + t[2]*p.Y + t[4], t[1]*p.X + t[3]*p.Y + t[5]}
}

// Unapply maps p through the inverse of t.
func (t Transform) Unapply(p Point) Point {
	return t.Inverse().Apply(p)
}

// GeoM converts t to an ebiten.GeoM.
func (t Transform) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, t[0])
	g.SetElement(1, 0, t[1])
	g.SetElement(0, 1, t[2])
	g.SetElement(1, 1, t[3])
	g.SetElement(0, 2, t[4])
	g.SetElement(1, 2, t[5])
	return g
}
