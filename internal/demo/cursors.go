package demo

import (
	"github.com/phanxgames/bramble"
)

// CursorState is the state of the cursors demo.
type CursorState struct {
	Boxes [4]Box
}

var cursorNames = [...]string{
	bramble.PointerCursor,
	bramble.TextCursor,
	bramble.CrosshairCursor,
	"grab", // registered as an alias in Run
}

// CursorTree shows one labelled box per cursor. Hovering a box switches the
// window cursor.
func CursorTree() bramble.Widget[CursorState] {
	var widgets []bramble.Widget[CursorState]
	for i, name := range cursorNames {
		cell := bramble.NewZStack[CursorState](
			box(96, bramble.Color{R: 0.2, G: 0.3, B: 0.5, A: 1}, func(s *CursorState) *Box { return &s.Boxes[i] }),
			bramble.Passive[CursorState](bramble.Center[CursorState](bramble.NewLabel[CursorState](name))),
		)
		widgets = append(widgets, bramble.WithCursor[CursorState](bramble.Sized[CursorState](cell, bramble.Size{W: 96, H: 96}), name))
	}
	return bramble.Center[CursorState](bramble.NewHStack(widgets...).WithSpacing(16))
}

func init() {
	register(Demo{
		Name:        "cursors",
		Description: "boxes that change the pointer cursor while hovered",
		Run: func(app *bramble.Application) error {
			return bramble.Launch(app.Cursor("grab", bramble.MoveCursor), CursorTree(), &CursorState{})
		},
	})
}
