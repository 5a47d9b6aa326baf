package mvc

import "strings"

// widgetIDCounter is a plain counter; mvc is single-threaded.
var widgetIDCounter uint32

func nextWidgetID() uint32 {
	widgetIDCounter++
	return widgetIDCounter
}

// EventHandler receives events raised by a widget or any of its descendants.
// A Controller becomes the handler of its layout root.
type EventHandler interface {
	// HandleClick reports whether the click on w was consumed.
	HandleClick(w *Widget) bool
}

// Disposer is implemented by scripts that release resources when their widget
// is disposed.
type Disposer interface {
	Dispose()
}

// Widget is the element of the UI tree. A single flat struct is used for all
// widget types; Type selects how the workspace presents it.
type Widget struct {
	// Identity
	ID   uint32
	Name string
	Type WidgetType

	// Hierarchy
	Parent   *Widget
	children []*Widget

	// Transform (local)
	X, Y           float64
	ScaleX, ScaleY float64

	// Computed by updateWorldTransform
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Presentation
	Width, Height float64
	Alpha         float64
	Visible       bool
	Color         Color
	Text          string

	// Command is routed to the owning view's CommandManager on click.
	Command string

	// Metadata
	UserData any

	script  any
	handler EventHandler

	disposed bool
}

// widgetDefaults sets the common default field values shared by all constructors.
func widgetDefaults(w *Widget) {
	w.ID = nextWidgetID()
	w.ScaleX = 1
	w.ScaleY = 1
	w.Alpha = 1
	w.Color = ColorWhite
	w.Visible = true
	w.transformDirty = true
}

// NewWidget creates a widget of the given type.
func NewWidget(name string, typ WidgetType) *Widget {
	w := &Widget{Name: name, Type: typ}
	widgetDefaults(w)
	return w
}

// NewContainer creates a container widget with no visual representation.
func NewContainer(name string) *Widget {
	return NewWidget(name, WidgetContainer)
}

// NewText creates a text widget with the given content.
func NewText(name, text string) *Widget {
	w := NewWidget(name, WidgetText)
	w.Text = text
	return w
}

// NewBox creates a solid rectangle widget.
func NewBox(name string, width, height float64, c Color) *Widget {
	w := NewWidget(name, WidgetBox)
	w.Width = width
	w.Height = height
	w.Color = c
	return w
}

// --- Script & handler ---

// SetScript attaches a script object to the widget. Any previously attached
// script is replaced without being disposed.
func (w *Widget) SetScript(script any) {
	w.script = script
}

// Script returns the attached script, or nil.
func (w *Widget) Script() any {
	return w.script
}

// SetHandler makes h the widget's event handler.
func (w *Widget) SetHandler(h EventHandler) {
	w.handler = h
}

// Handler returns the widget's own event handler, or nil.
func (w *Widget) Handler() EventHandler {
	return w.handler
}

// Click raises a click on w. The event bubbles from w towards the root until
// a handler consumes it. Invisible or disposed widgets ignore clicks.
func (w *Widget) Click() bool {
	if w.disposed || !w.Visible {
		return false
	}
	for p := w; p != nil; p = p.Parent {
		if p.handler != nil && p.handler.HandleClick(w) {
			return true
		}
	}
	return false
}

// --- Tree manipulation ---

// AddChild appends child to this widget's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this widget (cycle).
func (w *Widget) AddChild(child *Widget) {
	if child == nil {
		panic("mvc: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(w, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, w) {
		panic("mvc: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = w
	w.children = append(w.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(w)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (w *Widget) AddChildAt(child *Widget, index int) {
	if child == nil {
		panic("mvc: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(w, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, w) {
		panic("mvc: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(w.children) {
		panic("mvc: child index out of range")
	}
	child.Parent = w
	w.children = append(w.children, nil)
	copy(w.children[index+1:], w.children[index:])
	w.children[index] = child
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(w)
	}
}

// RemoveChild detaches child from this widget.
// Panics if child.Parent != w.
func (w *Widget) RemoveChild(child *Widget) {
	if child.Parent != w {
		panic("mvc: child's parent is not this widget")
	}
	w.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveChildAt removes and returns the child at the given index.
func (w *Widget) RemoveChildAt(index int) *Widget {
	if index < 0 || index >= len(w.children) {
		panic("mvc: child index out of range")
	}
	child := w.children[index]
	copy(w.children[index:], w.children[index+1:])
	w.children[len(w.children)-1] = nil
	w.children = w.children[:len(w.children)-1]
	child.Parent = nil
	markSubtreeDirty(child)
	return child
}

// RemoveFromParent detaches this widget from its parent.
// No-op if this widget has no parent.
func (w *Widget) RemoveFromParent() {
	if w.Parent == nil {
		return
	}
	w.Parent.RemoveChild(w)
}

// RemoveChildren detaches all children from this widget.
// Children are NOT disposed.
func (w *Widget) RemoveChildren() {
	for _, child := range w.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	clear(w.children)
	w.children = w.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (w *Widget) Children() []*Widget {
	return w.children
}

// NumChildren returns the number of children.
func (w *Widget) NumChildren() int {
	return len(w.children)
}

// ChildAt returns the child at the given index.
func (w *Widget) ChildAt(index int) *Widget {
	return w.children[index]
}

// FirstChild returns the first child, or nil.
func (w *Widget) FirstChild() *Widget {
	if len(w.children) == 0 {
		return nil
	}
	return w.children[0]
}

// NextSibling returns the child that follows w in its parent's list, or nil.
func (w *Widget) NextSibling() *Widget {
	if w.Parent == nil {
		return nil
	}
	i := w.IndexInParent()
	if i < 0 || i+1 >= len(w.Parent.children) {
		return nil
	}
	return w.Parent.children[i+1]
}

// IndexInParent returns w's position among its siblings, or -1 without a parent.
func (w *Widget) IndexInParent() int {
	if w.Parent == nil {
		return -1
	}
	for i, c := range w.Parent.children {
		if c == w {
			return i
		}
	}
	return -1
}

// SetChildIndex moves child to a new index among its siblings.
func (w *Widget) SetChildIndex(child *Widget, index int) {
	if child.Parent != w {
		panic("mvc: child's parent is not this widget")
	}
	if index < 0 || index >= len(w.children) {
		panic("mvc: child index out of range")
	}
	oldIndex := child.IndexInParent()
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(w.children[oldIndex:], w.children[oldIndex+1:index+1])
	} else {
		copy(w.children[index+1:], w.children[index:oldIndex])
	}
	w.children[index] = child
}

// --- Lookup ---

// Walk visits w and its descendants depth-first, each child's subtree before
// the next child. Returning false from fn skips the visited widget's children.
func (w *Widget) Walk(fn func(*Widget) bool) {
	if !fn(w) {
		return
	}
	for _, child := range w.children {
		child.Walk(fn)
	}
}

// Find returns the first descendant named name in depth-first order, or nil.
// w itself is not considered.
func (w *Widget) Find(name string) *Widget {
	for _, child := range w.children {
		if child.Name == name {
			return child
		}
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindPath resolves a slash-separated path of child names relative to w,
// e.g. "panel/footer/ok". Empty segments are ignored.
func (w *Widget) FindPath(path string) *Widget {
	cur := w
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		var next *Widget
		for _, child := range cur.children {
			if child.Name == seg {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// --- Presentation setters ---

// SetText replaces the widget's text.
func (w *Widget) SetText(text string) {
	w.Text = text
}

// SetVisible shows or hides the widget and its subtree.
func (w *Widget) SetVisible(visible bool) {
	w.Visible = visible
}

// --- Disposal ---

// Dispose removes this widget from its parent, marks it as disposed, and
// recursively disposes all descendants. Attached scripts implementing
// Disposer are disposed with their widget.
func (w *Widget) Dispose() {
	if w.disposed {
		return
	}
	w.RemoveFromParent()
	w.dispose()
}

func (w *Widget) dispose() {
	w.disposed = true
	w.ID = 0
	for _, child := range w.children {
		child.Parent = nil
		child.dispose()
	}
	if d, ok := w.script.(Disposer); ok {
		d.Dispose()
	}
	w.children = nil
	w.Parent = nil
	w.script = nil
	w.handler = nil
	w.UserData = nil
}

// IsDisposed returns true if this widget has been disposed.
func (w *Widget) IsDisposed() bool {
	return w.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of (or equal to) w.
func isAncestor(candidate, w *Widget) bool {
	for p := w; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from w.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (w *Widget) removeChildByPtr(child *Widget) {
	for i, c := range w.children {
		if c == child {
			copy(w.children[i:], w.children[i+1:])
			w.children[len(w.children)-1] = nil
			w.children = w.children[:len(w.children)-1]
			return
		}
	}
}
