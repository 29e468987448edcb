package bramble

import "testing"

func TestHStackLayout(t *testing.T) {
	a, b := newProbe("a"), newProbe("b")
	h := NewHStack[trace](sized(a, 30, 10), sized(b, 20, 40)).WithSpacing(5)
	got := h.Layout(Size{W: 200, H: 100}, NewLayoutCtx(nil), &trace{}, nil)

	if got != (Size{W: 55, H: 40}) {
		t.Errorf("size = %v, want {55 40}", got)
	}
	if off := h.Children()[1].Offset; off != (Point{X: 35}) {
		t.Errorf("second offset = %v, want {35 0}", off)
	}
}

func TestHStackHover(t *testing.T) {
	root := Center[boxes](NewHStack[boxes](
		OnHover[boxes](Sized[boxes](NewFill[boxes](ColorRed), Size{W: 32, H: 32}), func(hot bool, _ Context, s *boxes) { s.stats[0].hot = hot }),
		OnHover[boxes](Sized[boxes](NewFill[boxes](ColorGreen), Size{W: 32, H: 32}), func(hot bool, _ Context, s *boxes) { s.stats[1].hot = hot }),
		OnHover[boxes](Sized[boxes](NewFill[boxes](ColorBlue), Size{W: 32, H: 32}), func(hot bool, _ Context, s *boxes) { s.stats[2].hot = hot }),
	).WithSpacing(8))

	tests := []struct {
		at  Point
		hot []int
	}{
		{Point{0, 0}, nil},
		{Point{216, 256}, []int{0}},
		{Point{236, 256}, nil}, // in the gap
		{Point{256, 256}, []int{1}},
		{Point{296, 256}, []int{2}},
	}
	l, state := newBoxesLoop(root)
	for _, tt := range tests {
		l.InjectMove(tt.at.X, tt.at.Y)
		l.Step(0)
		if got := hotBoxes(state); !equalInts(got, tt.hot) {
			t.Errorf("hot at %v = %v, want %v", tt.at, got, tt.hot)
		}
	}
}
