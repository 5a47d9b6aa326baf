package mvc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Workspace is the top-level object that owns the widget tree, hosts views,
// loads layouts, and runs the frame loop. It implements ebiten.Game.
type Workspace struct {
	cfg     Config
	root    *Widget
	scripts *ScriptRegistry
	views   []View
	sink    NotificationSink
	input   KeyInput
	debug   bool
	fps     *fpsOverlay

	// Frame scripting
	injectQueue     []syntheticInput
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewWorkspace creates a workspace with a pre-created root container.
func NewWorkspace(cfg Config) *Workspace {
	cfg.applyDefaults()
	ws := &Workspace{
		cfg:     cfg,
		root:    NewContainer("root"),
		scripts: NewScriptRegistry(),
		input:   ebitenKeyInput{},
	}
	if cfg.ShowFPS {
		ws.fps = &fpsOverlay{}
	}
	ws.SetDebugMode(cfg.Debug)
	return ws
}

// Root returns the workspace's root container widget.
func (ws *Workspace) Root() *Widget {
	return ws.root
}

// Config returns the workspace configuration.
func (ws *Workspace) Config() Config {
	return ws.cfg
}

// Scripts returns the registry used to create layout scripts.
func (ws *Workspace) Scripts() *ScriptRegistry {
	return ws.scripts
}

// RegisterScript adds a layout script type.
func (ws *Workspace) RegisterScript(typeName string, f ScriptFactory) {
	ws.scripts.Register(typeName, f)
}

// SetNotificationSink sets the sink given to controllers of views created
// afterwards.
func (ws *Workspace) SetNotificationSink(sink NotificationSink) {
	ws.sink = sink
}

// SetKeyInput replaces the keyboard source. Pass nil to restore Ebitengine input.
func (ws *Workspace) SetKeyInput(in KeyInput) {
	if in == nil {
		in = ebitenKeyInput{}
	}
	ws.input = in
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-widget
// access panics, tree depth and child count warnings are logged, and every
// controller logs its binding table on attachment.
func (ws *Workspace) SetDebugMode(enabled bool) {
	ws.debug = enabled
	globalDebug = enabled
}

// Views returns the live views. The returned slice MUST NOT be mutated.
func (ws *Workspace) Views() []View {
	return ws.views
}

func (ws *Workspace) addView(v View) {
	ws.views = append(ws.views, v)
}

func (ws *Workspace) removeView(v View) {
	for i, o := range ws.views {
		if o == v {
			ws.views = append(ws.views[:i], ws.views[i+1:]...)
			return
		}
	}
}

// --- Layouts ---

// LoadLayout reads and builds a layout file. Relative paths are tried
// against each configured layout directory in order, then as given.
func (ws *Workspace) LoadLayout(path string) (*Widget, error) {
	data, err := ws.readLayout(path)
	if err != nil {
		return nil, err
	}
	root, err := ParseLayout(data, ws.scripts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// ParseLayout builds a layout from memory using the workspace's scripts.
func (ws *Workspace) ParseLayout(data []byte) (*Widget, error) {
	return ParseLayout(data, ws.scripts)
}

func (ws *Workspace) readLayout(path string) ([]byte, error) {
	if !filepath.IsAbs(path) {
		for _, dir := range ws.cfg.LayoutDirs {
			data, err := os.ReadFile(filepath.Join(dir, path))
			if err == nil {
				return data, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read layout: %w", err)
			}
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	return data, nil
}

// --- Frame loop ---

// Update runs the test runner, processes command key bindings and advances
// animated bindings.
func (ws *Workspace) Update() error {
	ws.update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (ws *Workspace) update(dt float32) {
	if ws.testRunner != nil {
		ws.testRunner.step(ws)
	}
	in := ws.input
	if injected, ok := ws.processInjectedInput(); ok {
		in = injected
	}
	for _, v := range ws.views {
		vb := v.AsView()
		if vb.commands != nil {
			vb.commands.Update(in)
		}
		if vb.controller != nil {
			vb.controller.AsController().Advance(dt)
		}
	}
	updateWorldTransform(ws.root, identityTransform, 1.0, false)
	if ws.fps != nil {
		ws.fps.advance(dt)
	}
}

// Draw renders a debug view of the tree: boxes as filled rectangles and text
// with the debug font. Queued screenshots are captured last.
func (ws *Workspace) Draw(screen *ebiten.Image) {
	drawWidget(screen, ws.root)
	if ws.fps != nil {
		ws.fps.draw(screen)
	}
	ws.flushScreenshots(screen)
}

func drawWidget(screen *ebiten.Image, w *Widget) {
	if !w.Visible {
		return
	}
	x, y := w.LocalToWorld(0, 0)
	switch w.Type {
	case WidgetBox:
		sx, sy := w.LocalToWorld(w.Width, w.Height)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(sx-x), float32(sy-y), w.Color.RGBA(w.WorldAlpha()), false)
	case WidgetText:
		if w.WorldAlpha() > 0 {
			ebitenutil.DebugPrintAt(screen, w.Text, int(x), int(y))
		}
	}
	for _, child := range w.children {
		drawWidget(screen, child)
	}
}

// Layout returns the configured logical screen size.
func (ws *Workspace) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ws.cfg.Width, ws.cfg.Height
}

// Run opens a window sized and titled from the workspace configuration and
// runs the frame loop until the window closes.
func Run(ws *Workspace) error {
	ebiten.SetWindowSize(ws.cfg.Width, ws.cfg.Height)
	ebiten.SetWindowTitle(ws.cfg.Title)
	return ebiten.RunGame(ws)
}
