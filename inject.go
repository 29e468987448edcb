package bramble

// InjectMove queues a pointer move to (x, y) in window coordinates.
func (l *Loop[T]) InjectMove(x, y float64) {
	l.Push(MouseMove{Pos: Point{X: x, Y: y}})
}

// InjectPress queues a move to (x, y) followed by a press of button.
func (l *Loop[T]) InjectPress(x, y float64, button MouseButton) {
	l.InjectMove(x, y)
	l.Push(MouseDown{Button: button})
}

// InjectRelease queues a move to (x, y) followed by a release of button.
func (l *Loop[T]) InjectRelease(x, y float64, button MouseButton) {
	l.InjectMove(x, y)
	l.Push(MouseUp{Button: button})
}

// InjectClick queues a left press and release at (x, y). Both are delivered
// in the next frame.
func (l *Loop[T]) InjectClick(x, y float64) {
	l.InjectPress(x, y, MouseButtonLeft)
	l.InjectRelease(x, y, MouseButtonLeft)
}

// InjectDrag queues a left-button drag from one point to another with steps
// intermediate moves. Consecutive moves are coalesced by the loop, so only
// the last position before the release is seen by the tree.
func (l *Loop[T]) InjectDrag(fromX, fromY, toX, toY float64, steps int) {
	l.InjectPress(fromX, fromY, MouseButtonLeft)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		l.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	l.InjectRelease(toX, toY, MouseButtonLeft)
}

// InjectKey queues a press and release of k.
func (l *Loop[T]) InjectKey(k Key, mods KeyModifiers) {
	l.Push(KeyDown{Key: k, Modifiers: mods})
	l.Push(KeyUp{Key: k, Modifiers: mods})
}

// InjectText queues one CharacterReceived per rune of s.
func (l *Loop[T]) InjectText(s string) {
	for _, r := range s {
		l.Push(CharacterReceived{Char: r})
	}
}
