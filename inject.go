package mvc

import "github.com/hajimehoshi/ebiten/v2"

type syntheticKind uint8

const (
	syntheticKey syntheticKind = iota
	syntheticCommand
	syntheticClick
)

// syntheticInput represents a single injected input event. One event is
// consumed per frame, and real keyboard input is ignored on that frame.
type syntheticInput struct {
	kind syntheticKind
	key  ebiten.Key
	name string // command name or widget path
}

// InjectKey queues a key press for the next frame. Command key bindings see
// it exactly as a real press.
func (ws *Workspace) InjectKey(key ebiten.Key) {
	ws.injectQueue = append(ws.injectQueue, syntheticInput{kind: syntheticKey, key: key})
}

// InjectCommand queues execution of a command on the first view that can
// execute it.
func (ws *Workspace) InjectCommand(name string) {
	ws.injectQueue = append(ws.injectQueue, syntheticInput{kind: syntheticCommand, name: name})
}

// InjectClick queues a click on the widget at path, relative to the
// workspace root (e.g. "CounterView/IncrementButton").
func (ws *Workspace) InjectClick(path string) {
	ws.injectQueue = append(ws.injectQueue, syntheticInput{kind: syntheticClick, name: path})
}

// processInjectedInput pops one event from the inject queue and applies it.
// It returns the key input to use for this frame and whether an event was
// consumed.
func (ws *Workspace) processInjectedInput() (KeyInput, bool) {
	if len(ws.injectQueue) == 0 {
		return nil, false
	}
	evt := ws.injectQueue[0]
	copy(ws.injectQueue, ws.injectQueue[1:])
	ws.injectQueue = ws.injectQueue[:len(ws.injectQueue)-1]

	switch evt.kind {
	case syntheticKey:
		return injectedKeyInput{key: evt.key}, true
	case syntheticCommand:
		ws.executeCommand(evt.name)
	case syntheticClick:
		if w := ws.root.FindPath(evt.name); w != nil {
			w.Click()
		} else {
			logger.Warningf("inject click: no widget at %q", evt.name)
		}
	}
	return noKeyInput{}, true
}

// executeCommand runs name on the first view whose command manager accepts it.
func (ws *Workspace) executeCommand(name string) bool {
	for _, v := range ws.views {
		if cm := v.AsView().commands; cm != nil && cm.Execute(name) {
			return true
		}
	}
	logger.Warningf("no view executed command %q", name)
	return false
}

// injectedKeyInput reports a single key as just pressed.
type injectedKeyInput struct {
	key ebiten.Key
}

func (in injectedKeyInput) IsKeyJustPressed(key ebiten.Key) bool {
	return key == in.key
}

// noKeyInput reports no keys.
type noKeyInput struct{}

func (noKeyInput) IsKeyJustPressed(ebiten.Key) bool { return false }
