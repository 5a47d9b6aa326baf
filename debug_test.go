package mvc

import (
	"fmt"
	"strings"
	"testing"
)

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DisposedWidgetPanics(t *testing.T) {
	ws := NewWorkspace(DefaultConfig())
	ws.SetDebugMode(true)
	defer ws.SetDebugMode(false)

	parent := NewContainer("parent")
	ws.Root().AddChild(parent)

	child := NewText("child", "")
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed widget, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_DisposedParentPanics(t *testing.T) {
	ws := NewWorkspace(DefaultConfig())
	ws.SetDebugMode(true)
	defer ws.SetDebugMode(false)

	parent := NewContainer("parent")
	parent.Dispose()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on AddChildAt with disposed parent, got none")
		}
	}()

	parent.AddChildAt(NewContainer("child"), 0)
}

func TestReleaseMode_DisposedWidgetNoPanic(t *testing.T) {
	ws := NewWorkspace(DefaultConfig())
	ws.SetDebugMode(false)

	child := NewContainer("child")
	child.Dispose()

	// Should not panic in release mode.
	ws.Root().AddChild(child)
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	rec := recordLogs(t)
	ws := NewWorkspace(DefaultConfig())
	ws.SetDebugMode(true)
	defer ws.SetDebugMode(false)

	// Build a chain deeper than debugMaxTreeDepth (32).
	current := ws.Root()
	for i := 0; i < debugMaxTreeDepth+5; i++ {
		child := NewContainer(fmt.Sprintf("depth_%d", i))
		current.AddChild(child)
		current = child
	}

	if len(rec.warnings) == 0 || !strings.Contains(rec.warnings[0], "tree depth") {
		t.Errorf("expected tree depth warning, got: %q", rec.warnings)
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	rec := recordLogs(t)
	ws := NewWorkspace(DefaultConfig())
	ws.SetDebugMode(true)
	defer ws.SetDebugMode(false)

	parent := NewContainer("many_children")
	ws.Root().AddChild(parent)

	for i := 0; i < debugMaxChildCount+1; i++ {
		parent.AddChild(NewContainer(fmt.Sprintf("c_%d", i)))
	}

	if len(rec.warnings) != 1 || !strings.Contains(rec.warnings[0], "children") {
		t.Errorf("expected one child count warning, got: %q", rec.warnings)
	}
}

func TestDebugModeFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debug = true
	NewWorkspace(cfg)
	defer func() { globalDebug = false }()

	if !globalDebug {
		t.Error("debug config should enable debug mode")
	}
}

// ---- FPS overlay -----------------------------------------------------------

func TestFPSText(t *testing.T) {
	if got := fpsText(59.94, 60); got != "FPS: 59.9\nTPS: 60.0" {
		t.Errorf("fpsText = %q", got)
	}
}

func TestFPSOverlayRefreshInterval(t *testing.T) {
	o := &fpsOverlay{}
	o.advance(0.1)
	if o.text == "" {
		t.Fatal("first advance should fill the text")
	}
	o.text = "stale"
	o.advance(0.1)
	if o.text != "stale" {
		t.Error("text should not refresh before the interval")
	}
	o.advance(0.5)
	if o.text == "stale" {
		t.Error("text should refresh after the interval")
	}
}

func TestShowFPSConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowFPS = true
	if NewWorkspace(cfg).fps == nil {
		t.Error("show_fps should create the overlay")
	}
	if NewWorkspace(DefaultConfig()).fps != nil {
		t.Error("overlay should be off by default")
	}
}
