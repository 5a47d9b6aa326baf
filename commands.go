package mvc

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyInput reports keyboard edges for the current frame.
type KeyInput interface {
	IsKeyJustPressed(key ebiten.Key) bool
}

// ebitenKeyInput reads the keyboard through Ebitengine.
type ebitenKeyInput struct{}

func (ebitenKeyInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// --- Command registry ---

type command struct {
	id      uint32
	name    string
	exec    func()
	canExec func() bool
}

type keyBinding struct {
	key  ebiten.Key
	name string
}

// CommandManager routes named commands to handlers. Commands are executed
// directly, by key bindings processed in Update, or by clicks on widgets
// whose Command names them.
type CommandManager struct {
	commands []command
	keys     []keyBinding
	nextID   uint32
}

// NewCommandManager returns an empty command manager.
func NewCommandManager() *CommandManager {
	return &CommandManager{}
}

// CommandHandle allows removing a registered command.
type CommandHandle struct {
	id  uint32
	mgr *CommandManager
}

// Remove unregisters the command so it no longer executes. Removing a
// command that was since replaced by another registration is a no-op.
func (h CommandHandle) Remove() {
	if h.mgr == nil {
		return
	}
	cmds := h.mgr.commands
	for i := range cmds {
		if cmds[i].id == h.id {
			copy(cmds[i:], cmds[i+1:])
			cmds[len(cmds)-1] = command{}
			h.mgr.commands = cmds[:len(cmds)-1]
			return
		}
	}
}

// Register adds a command. canExec may be nil, meaning always executable.
// Registering an existing name replaces its handler.
func (m *CommandManager) Register(name string, exec func(), canExec func() bool) CommandHandle {
	if exec == nil {
		panic("mvc: nil handler for command " + name)
	}
	m.nextID++
	cmd := command{id: m.nextID, name: name, exec: exec, canExec: canExec}
	if i := m.find(name); i >= 0 {
		m.commands[i] = cmd
	} else {
		m.commands = append(m.commands, cmd)
	}
	return CommandHandle{id: cmd.id, mgr: m}
}

func (m *CommandManager) find(name string) int {
	for i := range m.commands {
		if m.commands[i].name == name {
			return i
		}
	}
	return -1
}

// CanExecute reports whether name is registered and currently executable.
func (m *CommandManager) CanExecute(name string) bool {
	i := m.find(name)
	if i < 0 {
		return false
	}
	cmd := m.commands[i]
	return cmd.canExec == nil || cmd.canExec()
}

// Execute runs name if it can execute and reports whether it ran.
func (m *CommandManager) Execute(name string) bool {
	if !m.CanExecute(name) {
		return false
	}
	m.commands[m.find(name)].exec()
	return true
}

// Commands returns the registered command names, sorted.
func (m *CommandManager) Commands() []string {
	names := make([]string, len(m.commands))
	for i, cmd := range m.commands {
		names[i] = cmd.name
	}
	sort.Strings(names)
	return names
}

// --- Key bindings ---

// BindKey executes name whenever key is pressed. A key may trigger several
// commands; they run in binding order.
func (m *CommandManager) BindKey(key ebiten.Key, name string) {
	m.keys = append(m.keys, keyBinding{key: key, name: name})
}

// BindKeyName binds a key by its Ebitengine name, e.g. "Space" or "ArrowUp".
func (m *CommandManager) BindKeyName(keyName, name string) error {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(keyName)); err != nil {
		return fmt.Errorf("bind %q to %s: %w", keyName, name, err)
	}
	m.BindKey(key, name)
	return nil
}

// UnbindKey removes every binding of key.
func (m *CommandManager) UnbindKey(key ebiten.Key) {
	kept := m.keys[:0]
	for _, kb := range m.keys {
		if kb.key != key {
			kept = append(kept, kb)
		}
	}
	m.keys = kept
}

// Update executes the commands bound to keys pressed this frame and returns
// how many ran.
func (m *CommandManager) Update(in KeyInput) int {
	ran := 0
	for _, kb := range m.keys {
		if in.IsKeyJustPressed(kb.key) && m.Execute(kb.name) {
			ran++
		}
	}
	return ran
}
