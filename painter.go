package bramble

import "fmt"

// Fill paints its whole bounds with a color.
type Fill[T any] struct {
	WidgetBase[T]
	Color Color
}

// NewFill returns a widget filled with c.
func NewFill[T any](c Color) *Fill[T] {
	return &Fill[T]{Color: c}
}

func (f *Fill[T]) Paint(canvas Canvas, _ *T) {
	canvas.Fill(canvas.Bounds(), f.Color)
}

func (f *Fill[T]) Display() string {
	return fmt.Sprintf("Fill(%.2f,%.2f,%.2f,%.2f)", f.Color.R, f.Color.G, f.Color.B, f.Color.A)
}

// Painter paints with a function.
type Painter[T any] struct {
	WidgetBase[T]
	paint func(canvas Canvas, data *T)
}

// NewPainter returns a widget that paints by calling fn.
func NewPainter[T any](fn func(canvas Canvas, data *T)) *Painter[T] {
	return &Painter[T]{paint: fn}
}

func (p *Painter[T]) Paint(canvas Canvas, data *T) {
	p.paint(canvas, data)
}

// Image paints a texture registered in the Env under a name. The texture is
// resolved when the tree is initialized.
type Image[T any] struct {
	WidgetBase[T]
	Name string

	id    TextureID
	size  Size
	found bool
}

// NewImage returns an image widget for the named texture.
func NewImage[T any](name string) *Image[T] {
	return &Image[T]{Name: name}
}

// Lifecycle resolves the texture on Initialized.
func (img *Image[T]) Lifecycle(lc WidgetLifecycle, _ Context, _ *T, env *Env) {
	in, ok := lc.(Initialized)
	if !ok {
		return
	}
	id, ok := Get(env, TextureKey(img.Name))
	if !ok {
		logger.Warn("bramble: image texture not registered", "name", img.Name)
		return
	}
	img.id = id
	img.size = in.Textures[id].Size
	img.found = true
}

// Layout reports the texture size.
func (img *Image[T]) Layout(Size, LayoutCtx, *T, *Env) Size {
	return img.size
}

func (img *Image[T]) Paint(canvas Canvas, _ *T) {
	if !img.found {
		return
	}
	canvas.Image(img.id, canvas.Bounds())
}

func (img *Image[T]) Display() string {
	return fmt.Sprintf("Image(%s)", img.Name)
}
