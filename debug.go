package mvc

import "fmt"

// globalDebug mirrors the most recently set Workspace debug flag so that
// widget operations (which lack a Workspace pointer) can check it cheaply.
var globalDebug bool

// debugCheckDisposed panics with a descriptive message when a disposed widget
// is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(w *Widget, op string) {
	if w.disposed {
		panic(fmt.Sprintf("mvc debug: %s on disposed widget %q", op, w.Name))
	}
}

// debugMaxTreeDepth is the depth past which a warning is logged.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(w *Widget) {
	depth := 0
	for p := w; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warningf("tree depth %d exceeds %d (widget %q)", depth, debugMaxTreeDepth, w.Name)
	}
}

// debugMaxChildCount is the child count past which a warning is logged.
const debugMaxChildCount = 1000

func debugCheckChildCount(w *Widget) {
	if len(w.children) > debugMaxChildCount {
		logger.Warningf("widget %q has %d children (threshold %d)", w.Name, len(w.children), debugMaxChildCount)
	}
}

// debugLogBindings reports every binding-name and its listener count.
func (c *Controller) debugLogBindings() {
	for _, name := range c.registry.Names() {
		logger.Debugf("binding %q: %d view(s)", name, len(c.registry.Get(name)))
	}
}
