package mvc

import "testing"

// traceBinding records every refresh into a shared trace.
type traceBinding struct {
	BindingBase
	trace *[]string

	updates     int
	collections []CollectionChangedArgs
}

func newTraceBinding(w *Widget, name string, trace *[]string) *traceBinding {
	return &traceBinding{BindingBase: NewBindingBase(w, name), trace: trace}
}

func (b *traceBinding) UpdateView() {
	b.updates++
	if b.trace != nil {
		*b.trace = append(*b.trace, "view:"+b.Widget().Name)
	}
}

func (b *traceBinding) UpdateCollection(args CollectionChangedArgs) {
	b.collections = append(b.collections, args)
	if b.trace != nil {
		*b.trace = append(*b.trace, "collection:"+b.Widget().Name)
	}
}

// attach creates a widget named name under parent with a traceBinding
// listening to binding.
func attach(parent *Widget, name, binding string, trace *[]string) *traceBinding {
	w := NewContainer(name)
	parent.AddChild(w)
	b := newTraceBinding(w, binding, trace)
	w.SetScript(b)
	return b
}

func TestWalkerRegistersEveryBinding(t *testing.T) {
	root := NewContainer("root")
	attach(root, "a", "X", nil)
	attach(root, "b", "X", nil)

	c := NewController()
	c.OnWidgetScriptInit(root)

	if got := len(c.DataBindings().Get("X")); got != 2 {
		t.Errorf("Get(X) has %d bindings, want 2", got)
	}
	if c.DataBindings().Count() != 2 {
		t.Errorf("Count = %d, want 2", c.DataBindings().Count())
	}
}

func TestWalkerDepthFirstOrder(t *testing.T) {
	// root(binding) ─┬─ a ─── a1(binding)
	//                ├─ b(binding)
	//                └─ c ─┬─ c1(binding)
	//                      └─ c2(binding)
	var trace []string
	root := NewContainer("root")
	root.SetScript(newTraceBinding(root, "X", &trace))
	a := NewContainer("a")
	root.AddChild(a)
	attach(a, "a1", "X", &trace)
	attach(root, "b", "X", &trace)
	c := NewContainer("c")
	root.AddChild(c)
	attach(c, "c1", "X", &trace)
	attach(c, "c2", "X", &trace)

	ctrl := NewController()
	ctrl.OnWidgetScriptInit(root)
	ctrl.NotifyPropertyChanged("X")

	assertStrings(t, "order", trace, []string{"view:root", "view:a1", "view:b", "view:c1", "view:c2"})
}

func TestWalkerSetsController(t *testing.T) {
	root := NewContainer("root")
	b := attach(root, "a", "X", nil)

	if b.Controller() != nil {
		t.Fatal("controller should be nil before traversal")
	}
	c := NewController()
	c.OnWidgetScriptInit(root)
	if b.Controller() != c {
		t.Error("traversal should hand the controller to the binding")
	}
}

func TestWalkerIgnoresNonBindingScripts(t *testing.T) {
	root := NewContainer("root")
	other := NewContainer("other")
	other.SetScript("not a binding")
	root.AddChild(other)
	attach(root, "a", "X", nil)

	c := NewController()
	c.OnWidgetScriptInit(root)
	if c.DataBindings().Count() != 1 {
		t.Errorf("Count = %d, want 1", c.DataBindings().Count())
	}
}

func TestWalkerOnlyVisitsRootSubtree(t *testing.T) {
	top := NewContainer("top")
	root := NewContainer("root")
	top.AddChild(root)
	attach(top, "sibling", "X", nil)
	attach(root, "inside", "X", nil)

	c := NewController()
	c.OnWidgetScriptInit(root)
	got := c.DataBindings().Get("X")
	if len(got) != 1 || got[0].Widget().Name != "inside" {
		t.Errorf("Get(X) = %v, want only the binding inside root", got)
	}
}

func TestWalkerCountsDistinctWidgets(t *testing.T) {
	root := NewContainer("root")
	attach(root, "a", "X", nil)
	attach(root, "b", "Y", nil)

	c := NewController()
	if n := c.loadDataBindings(root, 0); n != 2 {
		t.Errorf("loadDataBindings = %d, want 2", n)
	}
	// A second pass over the same tree registers nothing new.
	if n := c.loadDataBindings(root, 0); n != 0 {
		t.Errorf("second loadDataBindings = %d, want 0", n)
	}
}
