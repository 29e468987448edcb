package demo

import (
	"fmt"

	"github.com/phanxgames/bramble"
)

// StackState is the state of the overlapping boxes demo.
type StackState struct {
	Boxes [3]Box
}

// StackTree overlays three centered boxes of decreasing size. Only the
// topmost box under the pointer is hot.
func StackTree() bramble.Widget[StackState] {
	colors := [3]bramble.Color{bramble.ColorBlue, bramble.ColorRed, bramble.ColorGreen}
	sizes := [3]float64{256, 128, 64}

	stack := bramble.NewZStack[StackState]()
	for i := range sizes {
		stack.Push(bramble.Center[StackState](box(sizes[i], colors[i], func(s *StackState) *Box { return &s.Boxes[i] })))
	}
	stack.Push(bramble.Passive[StackState](bramble.NewAlign[StackState](bramble.Pad[StackState](bramble.BoundLabel(func(s *StackState) string {
		return fmt.Sprintf("clicks: %d / %d / %d", s.Boxes[0].Clicks, s.Boxes[1].Clicks, s.Boxes[2].Clicks)
	}), bramble.PaddingAll(8)), 0, 0)))
	return stack
}

func init() {
	register(Demo{
		Name:        "stack",
		Description: "three overlapping boxes with exclusive hover and click counters",
		Run: func(app *bramble.Application) error {
			return bramble.Launch(app, StackTree(), &StackState{})
		},
	})
}
