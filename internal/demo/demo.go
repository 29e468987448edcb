// Package demo holds the widget trees shown by the bramble command.
package demo

import (
	"sort"

	"github.com/phanxgames/bramble"
)

// Demo is a runnable example tree.
type Demo struct {
	Name        string
	Description string
	Run         func(app *bramble.Application) error
}

var registry = map[string]Demo{}

func register(d Demo) {
	registry[d.Name] = d
}

// All returns every demo sorted by name.
func All() []Demo {
	demos := make([]Demo, 0, len(registry))
	for _, d := range registry {
		demos = append(demos, d)
	}
	sort.Slice(demos, func(i, j int) bool { return demos[i].Name < demos[j].Name })
	return demos
}

// Find returns the demo with the given name.
func Find(name string) (Demo, bool) {
	d, ok := registry[name]
	return d, ok
}

// Box is the interaction state of one box.
type Box struct {
	Clicks int
	Hot    bool
}

// box is a clickable square that lightens while hovered. Its state lives in
// the slot returned by slot.
func box[T any](size float64, c bramble.Color, slot func(*T) *Box) bramble.Widget[T] {
	var w bramble.Widget[T] = bramble.Sized[T](bramble.NewPainter(func(canvas bramble.Canvas, data *T) {
		fill := c
		if slot(data).Hot {
			fill = bramble.Color{R: c.R + (1-c.R)*0.4, G: c.G + (1-c.G)*0.4, B: c.B + (1-c.B)*0.4, A: c.A}
		}
		canvas.Fill(canvas.Bounds(), fill)
	}), bramble.Size{W: size, H: size})
	w = bramble.OnClick[T](w, func(_ bramble.Context, data *T) { slot(data).Clicks++ })
	w = bramble.OnHover[T](w, func(hot bool, _ bramble.Context, data *T) { slot(data).Hot = hot })
	return w
}
