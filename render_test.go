package bramble

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func paintList(paint func(c Canvas)) *DisplayList {
	list := &DisplayList{}
	paint(NewCanvas(list, NewFontRegistry(), Size{W: 64, H: 64}))
	return list
}

func TestEbitenRendererNoTarget(t *testing.T) {
	r := NewEbitenRenderer(NewFontRegistry(), 1)
	if err := r.Frame(&DisplayList{}, nil); !errors.Is(err, errNoTarget) {
		t.Errorf("err = %v, want errNoTarget", err)
	}
}

func TestEbitenRendererDrawsEveryKind(t *testing.T) {
	fonts := NewFontRegistry()
	r := NewEbitenRenderer(fonts, 2)
	r.SetTarget(ebiten.NewImage(128, 128))
	id, info := r.AddTexture(ebiten.NewImage(8, 4))
	if info.Size != (Size{W: 8, H: 4}) {
		t.Errorf("texture size = %v, want {8 4}", info.Size)
	}

	list := paintList(func(c Canvas) {
		c.Fill(c.Bounds(), ColorRed)
		c.Stroke(c.Bounds(), 1, ColorGreen)
		c.Text("hi", DefaultFont, Point{2, 2}, ColorWhite)
		c.Transformed(Translate(Point{10, 10})).WithAlpha(0.5).Image(id, Rect{Width: 16, Height: 8})
	})
	if err := r.Frame(list, nil); err != nil {
		t.Errorf("Frame: %v", err)
	}
}

func TestEbitenRendererReportsMissingResources(t *testing.T) {
	r := NewEbitenRenderer(NewFontRegistry(), 1)
	r.SetTarget(ebiten.NewImage(16, 16))

	list := &DisplayList{Commands: []DrawCommand{
		{Kind: CommandImage, Transform: Identity, Alpha: 1, Rect: Rect{Width: 4, Height: 4}, Texture: NextTextureID()},
		{Kind: CommandText, Transform: Identity, Alpha: 1, Text: "x", Font: "missing"},
		{Kind: CommandFill, Transform: Identity, Alpha: 1, Rect: Rect{Width: 4, Height: 4}, Color: ColorRed},
	}}
	err := r.Frame(list, nil)
	if !errors.Is(err, ErrTextureNotFound) {
		t.Errorf("err = %v, want ErrTextureNotFound", err)
	}
	if !errors.Is(err, ErrFontNotFound) {
		t.Errorf("err = %v, want ErrFontNotFound", err)
	}
}

func TestEbitenRendererUsesSurfaces(t *testing.T) {
	r := NewEbitenRenderer(NewFontRegistry(), 1)
	r.SetTarget(ebiten.NewImage(16, 16))
	id := NextTextureID()
	surfaces := Surfaces{id: ebiten.NewImage(4, 4)}

	list := paintList(func(c Canvas) { c.Image(id, Rect{Width: 4, Height: 4}) })
	if err := r.Frame(list, surfaces); err != nil {
		t.Errorf("Frame: %v", err)
	}
	if got := r.Textures(); len(got) != 0 {
		t.Errorf("surfaces leaked into textures: %v", got)
	}
}

func TestEbitenRendererPublishesSurfaces(t *testing.T) {
	r := NewEbitenRenderer(NewFontRegistry(), 1)
	target := ebiten.NewImage(16, 16)
	r.SetTarget(target)
	id, _ := r.AddTexture(ebiten.NewImage(2, 2))

	surfaces := make(Surfaces)
	if err := r.Frame(&DisplayList{}, surfaces); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if surfaces[FrameSurface] != target {
		t.Error("frame target not published under FrameSurface")
	}
	if surfaces[id] == nil {
		t.Errorf("texture %d not published", id)
	}
}
