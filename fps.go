package bramble

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const fpsRefresh = 500 * time.Millisecond

// FPS displays the measured frame and tick rates, refreshed twice a second.
type FPS[T any] struct {
	WidgetBase[T]
	label   *Label[T]
	elapsed time.Duration
	sample  func() (fps, tps float64)
}

// NewFPS returns an FPS counter.
func NewFPS[T any]() *FPS[T] {
	return &FPS[T]{
		label: NewLabel[T]("FPS: -\nTPS: -"),
		sample: func() (float64, float64) {
			return ebiten.ActualFPS(), ebiten.ActualTPS()
		},
	}
}

// Event refreshes the counter on Tick.
func (f *FPS[T]) Event(ev WidgetEvent, _ Context, _ *T) ControlFlow {
	tick, ok := ev.(Tick)
	if !ok {
		return Continue
	}
	f.elapsed += tick.Delta
	if f.elapsed < fpsRefresh {
		return Continue
	}
	f.elapsed = 0
	fps, tps := f.sample()
	f.label.Text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
	return Continue
}

// Layout sizes the counter to its text plus a small margin.
func (f *FPS[T]) Layout(parent Size, ctx LayoutCtx, data *T, env *Env) Size {
	s := f.label.Layout(parent, ctx, data, env)
	return Size{W: s.W + 8, H: s.H + 8}
}

// Paint draws the text over a translucent background.
func (f *FPS[T]) Paint(canvas Canvas, data *T) {
	canvas.Fill(canvas.Bounds(), ColorBlack.WithAlpha(0.5))
	f.label.Paint(canvas.Transformed(Translate(Point{X: 4, Y: 4})), data)
}

// Contains is false so the counter never takes the pointer.
func (f *FPS[T]) Contains(Point) bool { return false }

// Text returns the text currently shown.
func (f *FPS[T]) Text() string {
	return f.label.Text
}
