package bramble

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ErrTextureNotFound is returned when a draw command names a texture the
// renderer does not have.
var ErrTextureNotFound = errors.New("bramble: texture not found")

var errNoTarget = errors.New("bramble: renderer has no target image")

// whitePixel is scaled and tinted to draw solid rectangles.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// EbitenRenderer draws display lists onto an Ebitengine image.
type EbitenRenderer struct {
	// Scale is the UI scale applied on top of every command transform.
	Scale float64
	// ClearColor fills the target before each frame.
	ClearColor Color

	fonts    *FontRegistry
	textures map[TextureID]*ebiten.Image
	target   *ebiten.Image
}

// NewEbitenRenderer returns a renderer resolving fonts from fonts.
func NewEbitenRenderer(fonts *FontRegistry, scale float64) *EbitenRenderer {
	if scale <= 0 {
		scale = 1
	}
	return &EbitenRenderer{
		Scale:      scale,
		ClearColor: ColorBlack,
		fonts:      fonts,
		textures:   make(map[TextureID]*ebiten.Image),
	}
}

// SetTarget sets the image the next Frame draws onto.
func (r *EbitenRenderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// AddTexture loads img under a fresh texture ID.
func (r *EbitenRenderer) AddTexture(img *ebiten.Image) (TextureID, TextureInfo) {
	id := NextTextureID()
	r.textures[id] = img
	return id, textureInfo(img)
}

// Textures describes every loaded texture.
func (r *EbitenRenderer) Textures() map[TextureID]TextureInfo {
	infos := make(map[TextureID]TextureInfo, len(r.textures))
	for id, img := range r.textures {
		infos[id] = textureInfo(img)
	}
	return infos
}

func textureInfo(img *ebiten.Image) TextureInfo {
	b := img.Bounds()
	return TextureInfo{Size: Size{W: float64(b.Dx()), H: float64(b.Dy())}}
}

// Frame clears the target and draws every command in order. Commands that
// cannot be drawn are skipped and reported together in the returned error.
//
// Afterwards surfaces holds every loaded texture and, under FrameSurface,
// the image the frame was drawn onto.
func (r *EbitenRenderer) Frame(list *DisplayList, surfaces Surfaces) error {
	if r.target == nil {
		return errNoTarget
	}
	defer r.publish(surfaces)
	r.target.Fill(r.ClearColor.toRGBA())

	var errs []error
	var op ebiten.DrawImageOptions
	for i := range list.Commands {
		cmd := &list.Commands[i]
		switch cmd.Kind {
		case CommandFill:
			r.fill(cmd, cmd.Rect, &op)
		case CommandStroke:
			for _, edge := range strokeEdges(cmd.Rect, cmd.Width) {
				r.fill(cmd, edge, &op)
			}
		case CommandText:
			if err := r.text(cmd); err != nil {
				errs = append(errs, err)
			}
		case CommandImage:
			if err := r.image(cmd, surfaces, &op); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (r *EbitenRenderer) publish(surfaces Surfaces) {
	if surfaces == nil {
		return
	}
	for id, img := range r.textures {
		surfaces[id] = img
	}
	surfaces[FrameSurface] = r.target
}

// commandGeoM is the command transform followed by the UI scale.
func (r *EbitenRenderer) commandGeoM(cmd *DrawCommand) ebiten.GeoM {
	g := cmd.Transform.GeoM()
	g.Scale(r.Scale, r.Scale)
	return g
}

// colorScale sets premultiplied tint from c faded by alpha.
func colorScale(cs *ebiten.ColorScale, c Color, alpha float64) {
	a := float32(c.A * alpha)
	cs.Reset()
	cs.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
}

func (r *EbitenRenderer) fill(cmd *DrawCommand, rect Rect, op *ebiten.DrawImageOptions) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	op.GeoM.Reset()
	op.GeoM.Scale(rect.Width, rect.Height)
	op.GeoM.Translate(rect.X, rect.Y)
	op.GeoM.Concat(r.commandGeoM(cmd))
	colorScale(&op.ColorScale, cmd.Color, cmd.Alpha)
	r.target.DrawImage(ensureWhitePixel(), op)
}

// strokeEdges returns the four rectangles of an outline drawn inside rect.
func strokeEdges(rect Rect, width float64) [4]Rect {
	w := min(width, rect.Width/2)
	h := min(width, rect.Height/2)
	return [4]Rect{
		{X: rect.X, Y: rect.Y, Width: rect.Width, Height: h},
		{X: rect.X, Y: rect.Y + rect.Height - h, Width: rect.Width, Height: h},
		{X: rect.X, Y: rect.Y + h, Width: w, Height: rect.Height - 2*h},
		{X: rect.X + rect.Width - w, Y: rect.Y + h, Width: w, Height: rect.Height - 2*h},
	}
}

func (r *EbitenRenderer) text(cmd *DrawCommand) error {
	f, ok := r.fonts.Get(cmd.Font)
	if !ok {
		return fmt.Errorf("%w: %q", ErrFontNotFound, cmd.Font)
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cmd.Rect.X, cmd.Rect.Y)
	op.GeoM.Concat(r.commandGeoM(cmd))
	colorScale(&op.ColorScale, cmd.Color, cmd.Alpha)
	op.LineSpacing = f.LineHeight()
	text.Draw(r.target, cmd.Text, f.Face(), op)
	return nil
}

func (r *EbitenRenderer) image(cmd *DrawCommand, surfaces Surfaces, op *ebiten.DrawImageOptions) error {
	img, ok := r.textures[cmd.Texture]
	if !ok {
		img, ok = surfaces[cmd.Texture]
	}
	if !ok || img == nil {
		return fmt.Errorf("%w: %d", ErrTextureNotFound, cmd.Texture)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}
	op.GeoM.Reset()
	op.GeoM.Scale(cmd.Rect.Width/float64(b.Dx()), cmd.Rect.Height/float64(b.Dy()))
	op.GeoM.Translate(cmd.Rect.X, cmd.Rect.Y)
	op.GeoM.Concat(r.commandGeoM(cmd))
	colorScale(&op.ColorScale, cmd.Color, cmd.Alpha)
	r.target.DrawImage(img, op)
	return nil
}
