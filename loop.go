package bramble

import (
	"time"
)

// LoopConfig holds the collaborators of a Loop. Zero fields get defaults.
type LoopConfig struct {
	Env      *Env
	Fonts    *FontRegistry
	Textures map[TextureID]TextureInfo
	Surfaces Surfaces
	// Platform defaults to a 640x480 HeadlessPlatform.
	Platform Platform
	// Renderer may be nil, in which case paint output is only kept in the
	// display list.
	Renderer Renderer
}

// Loop owns the root of a widget tree and sequences its passes, one frame
// per Step.
type Loop[T any] struct {
	root     *Pod[T, Widget[T]]
	data     *T
	env      *Env
	fonts    *FontRegistry
	textures map[TextureID]TextureInfo
	surfaces Surfaces
	platform Platform
	renderer Renderer

	queue   []WidgetEvent
	events  []WidgetEvent // coalesced queue, reused every frame
	cursor  Point
	size    Size
	shown   string
	list    DisplayList
	started bool
	stats   debugStats

	updateTimer *FrameTimer
	paintTimer  *FrameTimer
	renderTimer *FrameTimer
}

// NewLoop returns a loop over root and data.
func NewLoop[T any](root Widget[T], data *T, cfg LoopConfig) *Loop[T] {
	if cfg.Env == nil {
		cfg.Env = NewEnv()
	}
	if cfg.Fonts == nil {
		cfg.Fonts = NewFontRegistry()
	}
	if cfg.Textures == nil {
		cfg.Textures = make(map[TextureID]TextureInfo)
	}
	if cfg.Surfaces == nil {
		cfg.Surfaces = make(Surfaces)
	}
	if cfg.Platform == nil {
		cfg.Platform = NewHeadlessPlatform(Size{W: 640, H: 480})
	}
	return &Loop[T]{
		root:     NewPod[T](root),
		data:     data,
		env:      cfg.Env,
		fonts:    cfg.Fonts,
		textures: cfg.Textures,
		surfaces: cfg.Surfaces,
		platform: cfg.Platform,
		renderer: cfg.Renderer,
		shown:    DefaultCursor,

		updateTimer: NewFrameTimer(),
		paintTimer:  NewFrameTimer(),
		renderTimer: NewFrameTimer(),
	}
}

// Root returns the root Pod.
func (l *Loop[T]) Root() *Pod[T, Widget[T]] {
	return l.root
}

// Data returns the application state.
func (l *Loop[T]) Data() *T {
	return l.data
}

// Env returns the environment.
func (l *Loop[T]) Env() *Env {
	return l.env
}

// DisplayList returns the output of the last paint pass.
func (l *Loop[T]) DisplayList() *DisplayList {
	return &l.list
}

// Size returns the window size of the last frame.
func (l *Loop[T]) Size() Size {
	return l.size
}

// Cursor returns the pointer position in window space.
func (l *Loop[T]) Cursor() Point {
	return l.cursor
}

// ShownCursor returns the name of the cursor last passed to the platform.
func (l *Loop[T]) ShownCursor() string {
	return l.shown
}

// Push queues ev for the next Step.
func (l *Loop[T]) Push(ev WidgetEvent) {
	l.queue = append(l.queue, ev)
}

// Timings returns the moving averages of the event and update, paint and
// render phases of recent frames.
func (l *Loop[T]) Timings() (update, paint, render time.Duration) {
	return l.updateTimer.Average(), l.paintTimer.Average(), l.renderTimer.Average()
}

// Pending returns the number of queued events.
func (l *Loop[T]) Pending() int {
	return len(l.queue)
}

// Init delivers Initialized and lays the tree out once. Step calls it on
// first use.
func (l *Loop[T]) Init() {
	if l.started {
		return
	}
	l.started = true
	l.size = l.platform.WindowSize()
	l.root.Lifecycle(Initialized{Textures: l.textures}, l.context(), l.data, l.env)
	l.root.Update(l.context(), l.data)
	l.root.Layout(l.size, NewLayoutCtx(l.fonts), l.data, l.env)
}

func (l *Loop[T]) context() Context {
	return NewContext(l.cursor, l.surfaces)
}

// Step runs one frame: events, update, layout, paint, render, frame. A
// minimized window skips the frame and keeps the queue for later.
func (l *Loop[T]) Step(delta time.Duration) {
	l.Init()

	size := l.platform.WindowSize()
	if size.IsZero() {
		return
	}
	l.stats.frame++

	l.updateTimer.Run(func(time.Duration) {
		events := l.drain(size)
		l.stats.events = len(events)

		l.dispatch(Tick{Delta: delta})
		for _, ev := range events {
			if m, ok := ev.(MouseMove); ok {
				l.cursor = m.Pos
			}
			l.dispatch(ev)
		}
		l.reconcileCursor()

		l.root.Update(l.context(), l.data)
		l.root.Layout(l.size, NewLayoutCtx(l.fonts), l.data, l.env)
	})

	l.paintTimer.Run(func(time.Duration) {
		l.list.Reset()
		l.root.Paint(NewCanvas(&l.list, l.fonts, l.size), l.data)
	})
	l.stats.commandCount = l.list.Len()

	l.renderTimer.Run(func(time.Duration) {
		if l.renderer == nil {
			return
		}
		if err := l.renderer.Frame(&l.list, l.surfaces); err != nil {
			logger.Error("bramble: render failed", "frame", l.stats.frame, "err", err)
		}
	})

	l.stats.update, l.stats.paint, l.stats.render = l.Timings()
	l.root.Frame(l.surfaces, l.data)
	debugLog(l.stats)
}

// drain empties the queue into the coalesced event list. A size change since
// the last frame is reported once, after the queued input.
func (l *Loop[T]) drain(size Size) []WidgetEvent {
	l.events = coalesceMoves(l.events[:0], l.queue)
	clear(l.queue)
	l.queue = l.queue[:0]
	if size != l.size {
		l.size = size
		l.events = append(l.events, Resized{Size: size})
	}
	return l.events
}

func (l *Loop[T]) dispatch(ev WidgetEvent) {
	if isInput(ev) {
		logger.Debug("bramble: event", "event", eventString(ev))
	}
	l.root.Event(ev, l.context(), l.data)
}

// reconcileCursor asks the platform for a new cursor only when the one
// declared by the tree changed.
func (l *Loop[T]) reconcileCursor() {
	name := l.root.Cursor()
	if name == "" {
		name = DefaultCursor
	}
	if name == l.shown {
		return
	}
	if !l.platform.SetCursor(name) {
		logger.Warn("bramble: unknown cursor", "cursor", name)
	}
	l.shown = name
}

// coalesceMoves appends events to dst, keeping only the last of every run of
// consecutive MouseMove events.
func coalesceMoves(dst, events []WidgetEvent) []WidgetEvent {
	for i, ev := range events {
		if _, ok := ev.(MouseMove); ok && i+1 < len(events) {
			if _, next := events[i+1].(MouseMove); next {
				continue
			}
		}
		dst = append(dst, ev)
	}
	return dst
}
