package mvc

import "sort"

// BindingRegistry indexes ViewBindings two ways: by widget (one-to-one, so a
// widget is never registered twice) and by binding-name (one name fans out to
// every binding that declared interest in it). It does not own the bindings;
// their lifetime follows the widget tree.
type BindingRegistry struct {
	byWidget map[*Widget]ViewBinding
	byName   map[string][]ViewBinding
	order    []ViewBinding
}

// NewBindingRegistry returns an empty registry.
func NewBindingRegistry() *BindingRegistry {
	return &BindingRegistry{
		byWidget: make(map[*Widget]ViewBinding),
		byName:   make(map[string][]ViewBinding),
	}
}

// Insert registers b under its widget and its binding-name. It reports false
// and changes nothing if b has no widget or its widget is already registered.
func (r *BindingRegistry) Insert(b ViewBinding) bool {
	w := b.Widget()
	if w == nil {
		return false
	}
	if _, dup := r.byWidget[w]; dup {
		return false
	}
	r.byWidget[w] = b
	name := b.BindingName()
	r.byName[name] = append(r.byName[name], b)
	r.order = append(r.order, b)
	return true
}

// Get returns the bindings registered under name in registration order, or
// nil. The returned slice MUST NOT be mutated by the caller.
func (r *BindingRegistry) Get(name string) []ViewBinding {
	return r.byName[name]
}

// Binding returns the binding attached to w, or nil.
func (r *BindingRegistry) Binding(w *Widget) ViewBinding {
	return r.byWidget[w]
}

// All returns every binding in registration order. The returned slice MUST
// NOT be mutated by the caller.
func (r *BindingRegistry) All() []ViewBinding {
	return r.order
}

// Names returns the registered binding-names, sorted.
func (r *BindingRegistry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of distinct registered widget-bindings.
func (r *BindingRegistry) Count() int {
	return len(r.byWidget)
}

// reset releases every index.
func (r *BindingRegistry) reset() {
	clear(r.byWidget)
	clear(r.byName)
	clear(r.order)
	r.order = r.order[:0]
}
