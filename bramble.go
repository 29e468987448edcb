package bramble

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorRed         = Color{1, 0, 0, 1}
	ColorGreen       = Color{0, 1, 0, 1}
	ColorBlue        = Color{0, 0, 1, 1}
	ColorTransparent = Color{}
)

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Invert returns the RGB inverse of c, keeping alpha.
func (c Color) Invert() Color {
	return Color{1 - c.R, 1 - c.G, 1 - c.B, c.A}
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Point is a 2D position or offset. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Size is a width and height.
type Size struct {
	W, H float64
}

// IsZero reports whether either dimension is zero.
func (s Size) IsZero() bool {
	return s.W == 0 || s.H == 0
}

// Min returns the component-wise minimum of s and o.
func (s Size) Min(o Size) Size {
	return Size{min(s.W, o.W), min(s.H, o.H)}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// RectOf returns a rectangle at the origin with the given size.
func RectOf(s Size) Rect {
	return Rect{Width: s.W, Height: s.H}
}

// Contains reports whether p lies inside the rectangle. The left and top
// edges are inside, the right and bottom edges are not, so that adjacent
// rectangles never both contain a point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{r.X, r.Y}
}

// Size returns the rectangle dimensions.
func (r Rect) Size() Size {
	return Size{r.Width, r.Height}
}

// Inset shrinks the rectangle by p on each side.
func (r Rect) Inset(p Padding) Rect {
	return Rect{
		X:      r.X + p.Left,
		Y:      r.Y + p.Top,
		Width:  max(0, r.Width-p.Left-p.Right),
		Height: max(0, r.Height-p.Top-p.Bottom),
	}
}

// Padding of an element inside a container.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// PaddingAll returns uniform padding.
func PaddingAll(v float64) Padding {
	return Padding{v, v, v, v}
}

// PaddingVH returns padding with vertical and horizontal components.
func PaddingVH(vertical, horizontal float64) Padding {
	return Padding{vertical, horizontal, vertical, horizontal}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Key identifies a physical keyboard key.
type Key = ebiten.Key

// TextureID identifies a texture known to the renderer.
type TextureID uint32

// textureIDCounter is a plain counter (no atomic, bramble is single-threaded).
var textureIDCounter uint32

// NextTextureID returns a fresh texture identifier.
func NextTextureID() TextureID {
	textureIDCounter++
	return TextureID(textureIDCounter)
}

// TextureInfo describes a texture loaded into the renderer.
type TextureInfo struct {
	Size Size
}

// FrameSurface is the Surfaces entry holding the image the last frame was
// rendered onto. NextTextureID never returns it.
const FrameSurface TextureID = 0

// Surfaces maps texture identifiers to off-screen render surfaces.
type Surfaces map[TextureID]*ebiten.Image
