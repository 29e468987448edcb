package bramble

import (
	"errors"
	"fmt"
	_ "image/jpeg" // decoders for Application.ImageFile
	_ "image/png"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window and loop started by Launch.
type RunConfig struct {
	Title  string
	Width  int // logical width
	Height int // logical height
	// Scale is the UI scale. Zero means 1.
	Scale float64
	// TPS is the input polling rate. Zero keeps the Ebitengine default.
	TPS        int
	Resizable  bool
	Debug      bool
	ShowFPS    bool
	ClearColor Color
	// Clipboard supplies the text for Shift+Insert paste.
	Clipboard func() (string, bool)
	// Script, when set, is a JSON test script played once the window opens.
	Script []byte
	// ExitAfterScript closes the window when Script finishes.
	ExitAfterScript bool
	// ScreenshotDir receives screenshots requested by Script.
	ScreenshotDir string
}

// Application collects the resources of a bramble program before Launch.
// Builder methods record the first error and Launch reports it.
type Application struct {
	cfg      RunConfig
	fonts    *FontRegistry
	env      *Env
	renderer *EbitenRenderer
	cursors  cursorTable
	err      error
}

// NewApplication returns an application with the default font registered.
func NewApplication(cfg RunConfig) *Application {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	fonts := NewFontRegistry()
	r := NewEbitenRenderer(fonts, cfg.Scale)
	r.ClearColor = cfg.ClearColor
	return &Application{
		cfg:      cfg,
		fonts:    fonts,
		env:      NewEnv(),
		renderer: r,
	}
}

// Config returns the effective run configuration.
func (a *Application) Config() RunConfig {
	return a.cfg
}

// Env returns the environment shared with the widget tree.
func (a *Application) Env() *Env {
	return a.env
}

// Fonts returns the font registry.
func (a *Application) Fonts() *FontRegistry {
	return a.fonts
}

func (a *Application) fail(err error) {
	if a.err == nil {
		a.err = err
	}
}

// Font registers a TrueType font under id.
func (a *Application) Font(id FontID, ttf []byte, size float64) *Application {
	f, err := LoadTTFFont(ttf, size)
	if err != nil {
		a.fail(fmt.Errorf("bramble: font %q: %w", id, err))
		return a
	}
	a.fonts.Register(id, f)
	return a
}

// Image loads img as a texture and publishes its ID in the environment under
// TextureKey(name).
func (a *Application) Image(name string, img *ebiten.Image) *Application {
	id, _ := a.renderer.AddTexture(img)
	Set(a.env, TextureKey(name), id)
	return a
}

// ImageFile loads a PNG or JPEG file as the named image.
func (a *Application) ImageFile(name, path string) *Application {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		a.fail(fmt.Errorf("bramble: image %q: %w", name, err))
		return a
	}
	return a.Image(name, img)
}

// Cursor makes name an alias for the cursor target.
func (a *Application) Cursor(name, target string) *Application {
	if _, ok := cursorShapes[target]; !ok && target != HiddenCursor {
		a.fail(fmt.Errorf("bramble: cursor %q: unknown target %q", name, target))
		return a
	}
	a.cursors.alias(name, target)
	return a
}

// FPS toggles the frame rate counter.
func (a *Application) FPS(show bool) *Application {
	a.cfg.ShowFPS = show
	return a
}

// Launch opens the window and runs root over data until the window closes.
func Launch[T any](a *Application, root Widget[T], data *T) error {
	if a.err != nil {
		return a.err
	}
	debugFromEnv()
	if a.cfg.Debug {
		SetDebugMode(true)
	}

	var runner *TestRunner
	if len(a.cfg.Script) > 0 {
		r, err := LoadTestScript(a.cfg.Script)
		if err != nil {
			return err
		}
		runner = r
	}

	if a.cfg.ShowFPS {
		root = NewZStack[T](root, NewAlign[T](NewFPS[T](), 0, 0))
	}

	platform := &ebitenPlatform{
		cursors: a.cursors,
		scale:   a.cfg.Scale,
		size: Size{
			W: float64(a.cfg.Width) * a.cfg.Scale,
			H: float64(a.cfg.Height) * a.cfg.Scale,
		},
	}
	loop := NewLoop(root, data, LoopConfig{
		Env:      a.env,
		Fonts:    a.fonts,
		Textures: a.renderer.Textures(),
		Surfaces: make(Surfaces),
		Platform: platform,
		Renderer: a.renderer,
	})
	input := NewInput(a.cfg.Scale)
	input.Clipboard = a.cfg.Clipboard

	g := &game[T]{
		cfg:         a.cfg,
		loop:        loop,
		input:       input,
		platform:    platform,
		renderer:    a.renderer,
		runner:      runner,
		screenshots: screenshots{dir: a.cfg.ScreenshotDir},
		clock:       newClock(time.Now),
	}

	ebiten.SetWindowTitle(a.cfg.Title)
	ebiten.SetWindowSize(int(platform.size.W), int(platform.size.H))
	if a.cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if a.cfg.TPS > 0 {
		ebiten.SetTPS(a.cfg.TPS)
	}

	logger.Info("bramble: launching", "title", a.cfg.Title, "width", a.cfg.Width, "height", a.cfg.Height, "scale", a.cfg.Scale)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("bramble: run: %w", err)
	}
	return nil
}

// game adapts a Loop to ebiten.Game. Input is polled every tick and queued;
// the frame itself runs in Draw, where the screen is available.
type game[T any] struct {
	cfg         RunConfig
	loop        *Loop[T]
	input       *Input
	platform    *ebitenPlatform
	renderer    *EbitenRenderer
	runner      *TestRunner
	screenshots screenshots
	clock       *clock
}

func (g *game[T]) Update() error {
	if g.runner != nil {
		g.runner.Step(g.loop, g.screenshots.request)
		if g.runner.Done() && g.cfg.ExitAfterScript && len(g.screenshots.queue) == 0 {
			return ebiten.Termination
		}
	}
	if g.runner == nil || g.runner.Done() {
		g.input.Poll(g.loop.Push)
	}
	return nil
}

func (g *game[T]) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	g.loop.Step(g.clock.tick())
	if globalDebug {
		s := g.loop.stats
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("frame %d  cmds %d  cursor %s", s.frame, s.commandCount, g.loop.ShownCursor()), 4, screen.Bounds().Dy()-16)
	}
	g.screenshots.flush(screen)
}

func (g *game[T]) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.platform.size = Size{W: float64(outsideWidth), H: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}
