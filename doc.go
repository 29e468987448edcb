// Package bramble is a retained-mode widget toolkit for [Ebitengine].
//
// A bramble program is a tree of widgets sharing one application state
// value of type T. Every frame the tree goes through the same passes:
// pending input events are dispatched, then update, layout and paint run,
// and the resulting [DisplayList] is handed to a [Renderer].
//
// # Quick start
//
// The simplest way to get started is [Launch], which opens a window and
// drives the loop for you:
//
//	type State struct{ Clicks int }
//
//	root := bramble.Center[State](bramble.OnClick[State](
//		bramble.Sized[State](bramble.NewFill[State](bramble.ColorRed), bramble.Size{W: 64, H: 64}),
//		func(_ bramble.Context, s *State) { s.Clicks++ },
//	))
//	app := bramble.NewApplication(bramble.RunConfig{Title: "Clicks", Width: 320, Height: 240})
//	if err := bramble.Launch(app, root, &State{}); err != nil {
//		log.Fatal(err)
//	}
//
// For tests and tools, drive a [Loop] directly with a [HeadlessPlatform]
// and the Inject methods. No window is needed.
//
// # Widgets and pods
//
// A [Widget] implements layout, paint, update, event and lifecycle
// handling. Embed [WidgetBase] to get defaults for everything but Paint.
// Containers wrap their children in a [Pod], which owns the child's
// identity, size, offset and hot/active state:
//
//   - a child is hot while the pointer is over its hit region;
//   - a child becomes active when a press lands on it and stays active
//     until the release, wherever the pointer is by then.
//
// Pods turn the first move over a widget into [MouseEnter] and send
// [MouseExit] when the pointer leaves.
//
// # Routing
//
// [ZStack] overlays children; the last one is on top. Pointer motion goes
// only to the topmost child under the pointer, so at most one sibling is
// hot, and a hover handoff is always seen as exit before enter. Other
// events are offered top-down until a widget returns [Break]. [HStack]
// lays children out in a row and routes the same way.
//
// Use [WithShape] for non-rectangular hit regions and [Passive] for
// decoration that must not take the pointer.
//
// # Resources
//
// Fonts live in a [FontRegistry]; [DefaultFont] is always present.
// Named resources such as textures are stored in an [Env] and looked up
// by typed [EnvKey]. [Application] collects both before Launch.
//
// # Debugging
//
// [SetDebugMode] (or BRAMBLE_DEBUG=1) outlines every pod and logs frame
// statistics through the package logger, see [SetLogger]. Scripted input
// replays with screenshots are available through [RunConfig.Script].
//
// [Ebitengine]: https://ebitengine.org
package bramble
