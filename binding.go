package mvc

import "weak"

// ViewBinding is a script attached to one widget that declares interest in
// one binding-name. The Controller that discovers it during traversal
// refreshes it on every notification for that name.
type ViewBinding interface {
	// Widget returns the widget the binding is attached to.
	Widget() *Widget
	// BindingName returns the property or collection name the binding
	// listens to.
	BindingName() string
	// SetController is called once by the owning Controller during traversal.
	SetController(c *Controller)
	// UpdateView pulls the current value from the Controller and pushes it
	// to the widget.
	UpdateView()
	// UpdateCollection applies an incremental collection change.
	UpdateCollection(args CollectionChangedArgs)
}

// Animator is implemented by bindings that change their widget over time.
// The workspace advances them once per frame.
type Animator interface {
	Advance(dt float32)
}

// BindingBase carries the state every ViewBinding needs. Embed it and
// implement UpdateView and UpdateCollection.
type BindingBase struct {
	widget *Widget
	name   string
	ctrl   weak.Pointer[Controller]
}

// NewBindingBase returns a base attached to w listening to name.
func NewBindingBase(w *Widget, name string) BindingBase {
	return BindingBase{widget: w, name: name}
}

// Widget returns the widget the binding is attached to.
func (b *BindingBase) Widget() *Widget {
	return b.widget
}

// BindingName returns the binding-name.
func (b *BindingBase) BindingName() string {
	return b.name
}

// SetController records a non-owning reference to c.
func (b *BindingBase) SetController(c *Controller) {
	if c == nil {
		b.ctrl = weak.Pointer[Controller]{}
		return
	}
	b.ctrl = weak.Make(c)
}

// Controller returns the owning Controller, or nil once it has been
// destroyed or collected.
func (b *BindingBase) Controller() *Controller {
	c := b.ctrl.Value()
	if c == nil || c.destroyed {
		return nil
	}
	return c
}

// Value returns the current value of the binding's property from the
// owning Controller.
func (b *BindingBase) Value() (any, bool) {
	c := b.Controller()
	if c == nil {
		return nil, false
	}
	return c.Value(b.name)
}

// Dispose drops the Controller reference when the widget is disposed.
func (b *BindingBase) Dispose() {
	b.ctrl = weak.Pointer[Controller]{}
}
