package bramble

// Platform is the window the loop runs in.
type Platform interface {
	// WindowSize returns the drawable size in logical pixels. A zero size
	// means the window is minimized.
	WindowSize() Size
	// SetCursor shows the named cursor and reports whether the name is known.
	SetCursor(name string) bool
}

// Renderer consumes the display list produced by each paint pass.
type Renderer interface {
	Frame(list *DisplayList, surfaces Surfaces) error
}

// HeadlessPlatform is a Platform with no window, for tests and scripted runs.
type HeadlessPlatform struct {
	Size Size
	// Cursors, when non-nil, is the set of cursor names SetCursor accepts.
	Cursors map[string]bool

	shown    string
	setCalls int
}

// NewHeadlessPlatform returns a headless window of the given size that
// accepts every cursor name.
func NewHeadlessPlatform(size Size) *HeadlessPlatform {
	return &HeadlessPlatform{Size: size, shown: DefaultCursor}
}

// WindowSize returns p.Size.
func (p *HeadlessPlatform) WindowSize() Size {
	return p.Size
}

// SetCursor records the cursor.
func (p *HeadlessPlatform) SetCursor(name string) bool {
	p.setCalls++
	if p.Cursors != nil && !p.Cursors[name] {
		return false
	}
	p.shown = name
	return true
}

// Cursor returns the cursor currently shown.
func (p *HeadlessPlatform) Cursor() string {
	return p.shown
}

// CursorChanges returns how many times SetCursor has been called.
func (p *HeadlessPlatform) CursorChanges() int {
	return p.setCalls
}

// RecordingRenderer keeps a copy of the last display list it was given.
// Err, when set, is returned from every Frame. Output entries are copied
// into the loop surfaces after each frame, like a renderer publishing its
// render targets.
type RecordingRenderer struct {
	Err    error
	Output Surfaces
	Frames int
	Last   []DrawCommand
}

// Frame records list.
func (r *RecordingRenderer) Frame(list *DisplayList, surfaces Surfaces) error {
	r.Frames++
	r.Last = append(r.Last[:0], list.Commands...)
	for id, img := range r.Output {
		surfaces[id] = img
	}
	return r.Err
}
