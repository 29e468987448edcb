package bramble

import "testing"

func layoutOf(w Widget[trace], parent Size) Size {
	return w.Layout(parent, NewLayoutCtx(NewFontRegistry()), &trace{}, NewEnv())
}

func TestAlignOffsets(t *testing.T) {
	tests := []struct {
		name  string
		align *Align[trace]
		want  Point
	}{
		{"center", Center[trace](sized(newProbe("a"), 20, 10)), Point{40, 45}},
		{"left", Left[trace](sized(newProbe("a"), 20, 10)), Point{0, 45}},
		{"right", Right[trace](sized(newProbe("a"), 20, 10)), Point{80, 45}},
		{"top", Top[trace](sized(newProbe("a"), 20, 10)), Point{40, 0}},
		{"bottom", Bottom[trace](sized(newProbe("a"), 20, 10)), Point{40, 90}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layoutOf(tt.align, Size{W: 100, H: 100})
			if got != (Size{W: 100, H: 100}) {
				t.Errorf("size = %v, want the parent", got)
			}
			if off := tt.align.Child().Offset; off != tt.want {
				t.Errorf("offset = %v, want %v", off, tt.want)
			}
		})
	}
}

func TestSizedBox(t *testing.T) {
	tests := []struct {
		name string
		size Size
		want Size
	}{
		{"fixed", Size{W: 20, H: 30}, Size{W: 20, H: 30}},
		{"width only", Size{W: 20}, Size{W: 20, H: 100}},
		{"unconstrained", Size{}, Size{W: 100, H: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := layoutOf(Sized[trace](newProbe("a"), tt.size), Size{W: 100, H: 100}); got != tt.want {
				t.Errorf("size = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPadded(t *testing.T) {
	p := Pad[trace](sized(newProbe("a"), 20, 10), PaddingVH(2, 4))
	got := layoutOf(p, Size{W: 100, H: 100})
	if got != (Size{W: 28, H: 14}) {
		t.Errorf("size = %v, want {28 14}", got)
	}
	if off := p.child[0].Offset; off != (Point{4, 2}) {
		t.Errorf("offset = %v, want {4 2}", off)
	}
}

func TestClickRequiresHotAndActive(t *testing.T) {
	var clicks int
	c := NewClick(func(_ Context, _ *trace) { clicks++ })
	up := MouseUp{Button: MouseButtonLeft}

	tests := []struct {
		name        string
		hot, active bool
		want        ControlFlow
	}{
		{"released over the widget", true, true, Break},
		{"released elsewhere", false, true, Continue},
		{"never pressed", true, false, Continue},
	}
	for _, tt := range tests {
		clicks = 0
		ctx := NewContext(Point{}, nil).WithHot(tt.hot).WithActive(tt.active)
		flow := c.Event(up, ctx, &trace{})
		if flow != tt.want {
			t.Errorf("%s: flow = %v, want %v", tt.name, flow, tt.want)
		}
		if want := map[ControlFlow]int{Break: 1, Continue: 0}[tt.want]; clicks != want {
			t.Errorf("%s: clicks = %d, want %d", tt.name, clicks, want)
		}
	}
}

func TestControlSeesWidgetFirst(t *testing.T) {
	p := newProbe("widget")
	c := NewControl[trace](p, controllerFunc[trace](func(ev WidgetEvent, _ Context, tr *trace) ControlFlow {
		tr.add("controller:%s", eventKind(ev))
		return Continue
	}))
	tr := &trace{}
	p.flow = Break
	if flow := c.Event(Focus{Focused: true}, Context{}, tr); flow != Break {
		t.Errorf("flow = %v, want Break from the widget", flow)
	}
	assertEntries(t, tr, "widget:focus:true", "controller:focus:true")
}

func TestHoverController(t *testing.T) {
	var states []bool
	h := NewHover(func(hot bool, _ Context, _ *trace) { states = append(states, hot) })
	h.Event(MouseEnter{}, Context{}, &trace{})
	h.Event(MouseMove{}, Context{}, &trace{})
	h.Event(MouseExit{}, Context{}, &trace{})
	if len(states) != 2 || !states[0] || states[1] {
		t.Errorf("states = %v, want [true false]", states)
	}
}

func TestImageResolvesTexture(t *testing.T) {
	quietLogs(t)
	env := NewEnv()
	id := NextTextureID()
	Set(env, TextureKey("logo"), id)
	textures := map[TextureID]TextureInfo{id: {Size: Size{W: 64, H: 32}}}

	img := NewImage[trace]("logo")
	img.Lifecycle(Initialized{Textures: textures}, Context{}, &trace{}, env)
	if got := layoutOf(img, Size{W: 500, H: 500}); got != (Size{W: 64, H: 32}) {
		t.Errorf("size = %v, want the texture size", got)
	}
	var list DisplayList
	img.Paint(NewCanvas(&list, nil, Size{W: 64, H: 32}), &trace{})
	if list.Len() != 1 || list.Commands[0].Texture != id {
		t.Errorf("commands = %v, want one image of texture %v", list.Commands, id)
	}

	missing := NewImage[trace]("nope")
	missing.Lifecycle(Initialized{Textures: textures}, Context{}, &trace{}, env)
	list.Reset()
	missing.Paint(NewCanvas(&list, nil, Size{}), &trace{})
	if list.Len() != 0 {
		t.Error("unresolved image painted")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		w    Widget[trace]
		want string
	}{
		{NewFill[trace](ColorRed), "Fill(1.00,0.00,0.00,1.00)"},
		{NewPainter(func(Canvas, *trace) {}), "Painter"},
		{NewZStack[trace](newProbe("a")), "ZStack(1)"},
		{Sized[trace](newProbe("a"), Size{}), "SizedBox(a)"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.w); got != tt.want {
			t.Errorf("DisplayName = %q, want %q", got, tt.want)
		}
	}
}
