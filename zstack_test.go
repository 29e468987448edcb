package bramble

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type boxStats struct {
	clicks int
	hot    bool
}

type boxes struct {
	stats [3]boxStats
}

// clickBox is a centered box that counts clicks and tracks hover in slot i.
func clickBox(i int, size float64) Widget[boxes] {
	var w Widget[boxes] = Sized[boxes](NewFill[boxes](ColorBlue), Size{W: size, H: size})
	w = OnClick[boxes](w, func(_ Context, s *boxes) { s.stats[i].clicks++ })
	w = OnHover[boxes](w, func(hot bool, _ Context, s *boxes) { s.stats[i].hot = hot })
	return Center[boxes](w)
}

func newBoxesLoop(root Widget[boxes]) (*Loop[boxes], *boxes) {
	state := &boxes{}
	l := NewLoop(root, state, LoopConfig{Platform: NewHeadlessPlatform(Size{W: 512, H: 512})})
	return l, state
}

func hotBoxes(s *boxes) []int {
	var hot []int
	for i, b := range s.stats {
		if b.hot {
			hot = append(hot, i)
		}
	}
	return hot
}

func TestZStackHoverScenario(t *testing.T) {
	tests := []struct {
		name string
		at   Point
		hot  []int
	}{
		{"outside every box", Point{64, 64}, nil},
		{"largest only", Point{160, 160}, []int{0}},
		{"middle", Point{200, 200}, []int{1}},
		{"center hits topmost", Point{256, 256}, []int{2}},
		{"back out", Point{10, 500}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, state := newBoxesLoop(NewZStack[boxes](clickBox(0, 256), clickBox(1, 128), clickBox(2, 64)))
			l.InjectMove(tt.at.X, tt.at.Y)
			l.Step(0)
			if got := hotBoxes(state); !equalInts(got, tt.hot) {
				t.Errorf("hot boxes = %v, want %v", got, tt.hot)
			}
		})
	}
}

func TestZStackClickIncrementsTopmostOnly(t *testing.T) {
	l, state := newBoxesLoop(NewZStack[boxes](clickBox(0, 256), clickBox(1, 128), clickBox(2, 64)))

	l.InjectMove(256, 256)
	l.Step(0)
	l.InjectClick(256, 256)
	l.Step(0)

	want := [3]int{0, 0, 1}
	for i, b := range state.stats {
		if b.clicks != want[i] {
			t.Errorf("box %d clicks = %d, want %d", i, b.clicks, want[i])
		}
	}

	l.InjectClick(160, 160)
	l.Step(0)
	if state.stats[0].clicks != 1 || state.stats[2].clicks != 1 {
		t.Errorf("clicks = %+v, want box 0 and box 2 clicked once", state.stats)
	}
	if got := hotBoxes(state); !equalInts(got, []int{0}) {
		t.Errorf("hot boxes = %v, want [0]", got)
	}
}

func TestZStackHoverHandoffOrder(t *testing.T) {
	low, high := newProbe("low"), newProbe("high")
	root := NewZStack[trace](sized(low, 100, 100), sized(high, 50, 50))
	l, _, tr := newTestLoop(root, 200, 200)
	stack := root.Children()

	l.InjectMove(75, 75)
	l.Step(0)
	assertEntries(t, tr, "low:enter")

	tr.reset()
	l.InjectMove(25, 25)
	l.Step(0)
	assertEntries(t, tr, "low:exit", "high:enter")
	if stack[0].Hot || !stack[1].Hot {
		t.Errorf("hot = [%v %v], want [false true]", stack[0].Hot, stack[1].Hot)
	}

	tr.reset()
	l.InjectMove(150, 150)
	l.Step(0)
	assertEntries(t, tr, "high:exit")
}

func TestZStackEnterIsExclusive(t *testing.T) {
	low, high := newProbe("low"), newProbe("high")
	root := NewZStack[trace](sized(low, 100, 100), sized(high, 50, 50))
	l, _, tr := newTestLoop(root, 200, 200)

	// The first move into the window reaches the stack as an enter.
	l.InjectMove(25, 25)
	l.Step(0)
	assertEntries(t, tr, "high:enter")
}

func TestZStackExitWhenMovingOffEveryChild(t *testing.T) {
	a := newProbe("a")
	root := NewZStack[trace](sized(a, 50, 50))
	l, _, tr := newTestLoop(root, 200, 200)

	l.InjectMove(25, 25)
	l.Step(0)
	l.InjectMove(100, 100) // still inside the window, outside the child
	l.Step(0)
	assertEntries(t, tr, "a:enter", "a:exit")
}

func TestZStackSwallowedPress(t *testing.T) {
	low, high := newProbe("low"), newProbe("high")
	root := NewZStack[trace](sized(low, 100, 100), sized(high, 50, 50))
	l, _, tr := newTestLoop(root, 200, 200)

	l.InjectPress(25, 25, MouseButtonLeft)
	l.Step(0)
	assertEntries(t, tr, "high:enter", "high:down:left")
}

func TestZStackBreakHaltsLowerChildren(t *testing.T) {
	for _, flow := range []ControlFlow{Break, Continue} {
		t.Run(flow.String(), func(t *testing.T) {
			low, high := newProbe("low"), newProbe("high")
			high.flow = flow
			root := NewZStack[trace](sized(low, 100, 100), sized(high, 50, 50))
			l, _, tr := newTestLoop(root, 200, 200)
			stack := root.Children()

			// Leave both children active: left press on low, right press on high.
			l.InjectPress(75, 75, MouseButtonLeft)
			l.Step(0)
			l.InjectPress(25, 25, MouseButtonRight)
			l.Step(0)
			if !stack[0].Active || !stack[1].Active {
				t.Fatalf("active = [%v %v], want both", stack[0].Active, stack[1].Active)
			}

			tr.reset()
			l.Push(MouseUp{Button: MouseButtonLeft})
			l.Step(0)
			if flow == Break {
				assertEntries(t, tr, "high:up:left")
				if !stack[0].Active {
					t.Error("low should still be active")
				}
			} else {
				assertEntries(t, tr, "high:up:left", "low:up:left")
			}
		})
	}
}

func TestZStackBreakStopsKeyEvents(t *testing.T) {
	low, high := newProbe("low"), newProbe("high")
	high.flow = Break
	l, _, tr := newTestLoop(NewZStack[trace](low, high), 100, 100)

	l.InjectKey(ebiten.KeyA, 0)
	l.Step(0)
	assertEntries(t, tr, "high:keydown:A", "high:keyup:A")
}

func TestZStackActiveReleaseOffWidget(t *testing.T) {
	a, b := newProbe("a"), newProbe("b")
	l, _, tr := newTestLoop(NewHStack[trace](sized(a, 50, 50), sized(b, 50, 50)), 200, 200)

	l.InjectPress(10, 10, MouseButtonLeft)
	l.Step(0)
	l.InjectRelease(60, 10, MouseButtonLeft)
	l.Step(0)

	assertEntries(t, tr, "a:enter", "a:down:left", "a:exit", "b:enter", "a:up:left")
}

func TestZStackPaintsBottomToTop(t *testing.T) {
	root := NewZStack[trace](NewFill[trace](ColorRed), NewFill[trace](ColorBlue))
	l, _, _ := newTestLoop(root, 10, 10)
	l.Step(0)

	cmds := l.DisplayList().Commands
	if len(cmds) != 2 {
		t.Fatalf("commands = %d, want 2", len(cmds))
	}
	if cmds[0].Color != ColorRed || cmds[1].Color != ColorBlue {
		t.Errorf("paint order = %v, %v; want red then blue", cmds[0].Color, cmds[1].Color)
	}
}

func TestZStackCursorFromTopmostHotChild(t *testing.T) {
	root := NewZStack[trace](
		WithCursor[trace](sized(newProbe("low"), 100, 100), TextCursor),
		WithCursor[trace](sized(newProbe("high"), 50, 50), PointerCursor),
	)
	l, _, _ := newTestLoop(root, 200, 200)

	tests := []struct {
		at   Point
		want string
	}{
		{Point{25, 25}, PointerCursor},
		{Point{75, 75}, TextCursor},
		{Point{150, 150}, ""},
	}
	for _, tt := range tests {
		l.InjectMove(tt.at.X, tt.at.Y)
		l.Step(0)
		if got := root.Cursor(); got != tt.want {
			t.Errorf("Cursor() at %v = %q, want %q", tt.at, got, tt.want)
		}
	}
}

func TestZStackContains(t *testing.T) {
	root := NewZStack[trace](sized(newProbe("a"), 10, 10))
	l, _, _ := newTestLoop(root, 100, 100)
	l.Step(0)

	if !root.Contains(Point{5, 5}) {
		t.Error("stack should contain a point inside its child")
	}
	if root.Contains(Point{50, 50}) {
		t.Error("stack should not contain a point outside every child")
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
