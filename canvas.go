package bramble

import "fmt"

// CommandKind identifies the kind of draw command.
type CommandKind uint8

const (
	CommandFill   CommandKind = iota // solid rectangle
	CommandStroke                    // rectangle outline
	CommandText                      // text run
	CommandImage                     // texture blit
)

func (k CommandKind) String() string {
	switch k {
	case CommandFill:
		return "fill"
	case CommandStroke:
		return "stroke"
	case CommandText:
		return "text"
	case CommandImage:
		return "image"
	default:
		return "unknown"
	}
}

// DrawCommand is a single draw instruction emitted during the paint pass.
// Geometry is in the local space described by Transform.
type DrawCommand struct {
	Kind      CommandKind
	Transform Transform
	Alpha     float64
	Rect      Rect
	Color     Color
	Width     float64   // stroke width (CommandStroke)
	Text      string    // CommandText
	Font      FontID    // CommandText
	Texture   TextureID // CommandImage
}

// DisplayList is the ordered output of a paint pass. Later commands draw
// over earlier ones.
type DisplayList struct {
	Commands []DrawCommand
}

// Reset empties the list, keeping its capacity.
func (l *DisplayList) Reset() {
	l.Commands = l.Commands[:0]
}

// Len returns the number of commands.
func (l *DisplayList) Len() int {
	return len(l.Commands)
}

// Canvas is the paint target handed to widgets. It is a cheap value; derived
// canvases share the underlying DisplayList.
type Canvas struct {
	list      *DisplayList
	fonts     *FontRegistry
	transform Transform
	size      Size
	alpha     float64
}

// NewCanvas returns a root canvas of the given size appending to list.
func NewCanvas(list *DisplayList, fonts *FontRegistry, size Size) Canvas {
	return Canvas{
		list:      list,
		fonts:     fonts,
		transform: Identity,
		size:      size,
		alpha:     1,
	}
}

// Bounds returns the canvas rectangle in local space.
func (c Canvas) Bounds() Rect {
	return RectOf(c.size)
}

// Size returns the canvas size.
func (c Canvas) Size() Size {
	return c.size
}

// Transform returns the accumulated transform.
func (c Canvas) Transform() Transform {
	return c.transform
}

// Fonts returns the font registry.
func (c Canvas) Fonts() *FontRegistry {
	return c.fonts
}

// Transformed returns a canvas with t composed into its transform.
func (c Canvas) Transformed(t Transform) Canvas {
	c.transform = c.transform.Mul(t)
	return c
}

// WithSize returns a canvas with the given size.
func (c Canvas) WithSize(s Size) Canvas {
	c.size = s
	return c
}

// WithAlpha returns a canvas whose commands are additionally faded by a.
func (c Canvas) WithAlpha(a float64) Canvas {
	c.alpha *= a
	return c
}

func (c Canvas) emit(cmd DrawCommand) {
	if c.list == nil {
		return
	}
	cmd.Transform = c.transform
	cmd.Alpha = c.alpha
	c.list.Commands = append(c.list.Commands, cmd)
}

// Fill paints a solid rectangle.
func (c Canvas) Fill(r Rect, color Color) {
	c.emit(DrawCommand{Kind: CommandFill, Rect: r, Color: color})
}

// Stroke paints a rectangle outline of the given width, inside r.
func (c Canvas) Stroke(r Rect, width float64, color Color) {
	if width <= 0 {
		return
	}
	c.emit(DrawCommand{Kind: CommandStroke, Rect: r, Color: color, Width: width})
}

// Text paints s with its top-left corner at at. The font must be registered;
// asking for an unknown font is a programming error and panics.
func (c Canvas) Text(s string, font FontID, at Point, color Color) {
	f := c.fonts.MustGet(font)
	w, h := f.Measure(s)
	c.emit(DrawCommand{
		Kind:  CommandText,
		Rect:  Rect{X: at.X, Y: at.Y, Width: w, Height: h},
		Color: color,
		Text:  s,
		Font:  font,
	})
}

// Image paints texture id stretched over dst.
func (c Canvas) Image(id TextureID, dst Rect) {
	c.emit(DrawCommand{Kind: CommandImage, Rect: dst, Color: ColorWhite, Texture: id})
}

func (cmd DrawCommand) String() string {
	return fmt.Sprintf("%s %v", cmd.Kind, cmd.Rect)
}
