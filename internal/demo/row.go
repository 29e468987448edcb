package demo

import (
	"github.com/phanxgames/bramble"
)

// RowState is the state of the row demo.
type RowState struct {
	Boxes [3]Box
}

// RowTree centers a row of three boxes separated by a gap.
func RowTree() bramble.Widget[RowState] {
	var widgets []bramble.Widget[RowState]
	for i := range 3 {
		widgets = append(widgets, box(32, bramble.ColorRed, func(s *RowState) *Box { return &s.Boxes[i] }))
	}
	return bramble.Center[RowState](bramble.NewHStack(widgets...).WithSpacing(8))
}

func init() {
	register(Demo{
		Name:        "row",
		Description: "a centered horizontal stack of hoverable boxes",
		Run: func(app *bramble.Application) error {
			return bramble.Launch(app, RowTree(), &RowState{})
		},
	})
}
