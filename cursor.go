package bramble

import "github.com/hajimehoshi/ebiten/v2"

// Cursor names understood by the Ebitengine platform.
const (
	DefaultCursor    = "default"
	TextCursor       = "text"
	PointerCursor    = "pointer"
	CrosshairCursor  = "crosshair"
	EWResizeCursor   = "ew-resize"
	NSResizeCursor   = "ns-resize"
	NESWResizeCursor = "nesw-resize"
	NWSEResizeCursor = "nwse-resize"
	MoveCursor       = "move"
	NotAllowedCursor = "not-allowed"
	HiddenCursor     = "none"
)

var cursorShapes = map[string]ebiten.CursorShapeType{
	DefaultCursor:    ebiten.CursorShapeDefault,
	TextCursor:       ebiten.CursorShapeText,
	PointerCursor:    ebiten.CursorShapePointer,
	CrosshairCursor:  ebiten.CursorShapeCrosshair,
	EWResizeCursor:   ebiten.CursorShapeEWResize,
	NSResizeCursor:   ebiten.CursorShapeNSResize,
	NESWResizeCursor: ebiten.CursorShapeNESWResize,
	NWSEResizeCursor: ebiten.CursorShapeNWSEResize,
	MoveCursor:       ebiten.CursorShapeMove,
	NotAllowedCursor: ebiten.CursorShapeNotAllowed,
}

// cursorTable resolves cursor names, following aliases registered by the
// application.
type cursorTable struct {
	aliases map[string]string
}

func (t *cursorTable) alias(name, target string) {
	if t.aliases == nil {
		t.aliases = make(map[string]string)
	}
	t.aliases[name] = target
}

// resolve returns the cursor name after alias expansion.
func (t *cursorTable) resolve(name string) string {
	if target, ok := t.aliases[name]; ok {
		return target
	}
	return name
}

// known reports whether name, after alias expansion, is a cursor.
func (t *cursorTable) known(name string) bool {
	name = t.resolve(name)
	if name == HiddenCursor {
		return true
	}
	_, ok := cursorShapes[name]
	return ok
}

// ebitenPlatform is the Platform backed by the Ebitengine window.
type ebitenPlatform struct {
	cursors cursorTable
	scale   float64
	size    Size // outside size reported by Game.Layout
}

// WindowSize returns the logical window size, or zero when minimized.
func (p *ebitenPlatform) WindowSize() Size {
	if ebiten.IsWindowMinimized() {
		return Size{}
	}
	return Size{W: p.size.W / p.scale, H: p.size.H / p.scale}
}

// SetCursor switches the Ebitengine cursor shape.
func (p *ebitenPlatform) SetCursor(name string) bool {
	if !p.cursors.known(name) {
		return false
	}
	name = p.cursors.resolve(name)
	if name == HiddenCursor {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
		return true
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	ebiten.SetCursorShape(cursorShapes[name])
	return true
}
