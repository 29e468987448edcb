package bramble

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// ErrFontNotFound is returned when a font ID has not been registered.
var ErrFontNotFound = errors.New("bramble: font not found")

// FontID names a registered font.
type FontID string

// DefaultFont is always present in a registry created by NewFontRegistry.
const DefaultFont FontID = "default"

// Font is a text face with its line metrics.
type Font struct {
	face text.Face
	lh   float64
}

// NewFont wraps an Ebitengine text face.
func NewFont(face text.Face) *Font {
	m := face.Metrics()
	return &Font{
		face: face,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("bramble: failed to parse TTF data: %w", err)
	}
	return NewFont(&text.GoTextFace{Source: source, Size: size}), nil
}

// basicFont returns the built-in 7x13 bitmap font.
func basicFont() *Font {
	return NewFont(text.NewGoXFace(basicfont.Face7x13))
}

// Measure returns the size of the rendered text. Lines are separated by
// '\n'.
func (f *Font) Measure(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying face for direct text/v2 rendering.
func (f *Font) Face() text.Face {
	return f.face
}

// FontRegistry maps font IDs to fonts. It is filled at setup and only read
// during layout and paint.
type FontRegistry struct {
	fonts map[FontID]*Font
}

// NewFontRegistry returns a registry holding the built-in DefaultFont.
func NewFontRegistry() *FontRegistry {
	r := &FontRegistry{fonts: make(map[FontID]*Font)}
	r.Register(DefaultFont, basicFont())
	return r
}

// Register adds or replaces a font.
func (r *FontRegistry) Register(id FontID, f *Font) {
	r.fonts[id] = f
}

// Get returns the font registered under id.
func (r *FontRegistry) Get(id FontID) (*Font, bool) {
	if r == nil {
		return nil, false
	}
	f, ok := r.fonts[id]
	return f, ok
}

// MustGet returns the font registered under id and panics if there is none.
func (r *FontRegistry) MustGet(id FontID) *Font {
	f, ok := r.Get(id)
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrFontNotFound, id))
	}
	return f
}

// Len returns the number of registered fonts.
func (r *FontRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fonts)
}

// TextAlign controls horizontal text alignment within a Label.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// Label is a text widget sized to its content.
type Label[T any] struct {
	WidgetBase[T]
	Text  string
	Font  FontID
	Color Color
	Align TextAlign

	source func(data *T) string
	text   Size
}

// NewLabel returns a label showing s in the default font.
func NewLabel[T any](s string) *Label[T] {
	return &Label[T]{Text: s, Font: DefaultFont, Color: ColorWhite}
}

// BoundLabel returns a label whose text is recomputed from the application
// state on every update.
func BoundLabel[T any](source func(data *T) string) *Label[T] {
	l := NewLabel[T]("")
	l.source = source
	return l
}

// Update refreshes bound text.
func (l *Label[T]) Update(_ Context, data *T) {
	if l.source != nil {
		l.Text = l.source(data)
	}
}

// Layout measures the text. Alignment other than left makes the label fill
// the available width.
func (l *Label[T]) Layout(parent Size, ctx LayoutCtx, _ *T, _ *Env) Size {
	f, ok := ctx.Fonts.Get(l.Font)
	if !ok {
		return Size{}
	}
	w, h := f.Measure(l.Text)
	l.text = Size{w, h}
	if l.Align != TextAlignLeft {
		return Size{parent.W, h}
	}
	return Size{w, h}
}

// Paint draws the text.
func (l *Label[T]) Paint(canvas Canvas, _ *T) {
	var x float64
	switch l.Align {
	case TextAlignCenter:
		x = (canvas.Size().W - l.text.W) / 2
	case TextAlignRight:
		x = canvas.Size().W - l.text.W
	}
	canvas.Text(l.Text, l.Font, Point{X: x}, l.Color)
}

// Display returns the label text.
func (l *Label[T]) Display() string {
	return fmt.Sprintf("Label(%q)", l.Text)
}
