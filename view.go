package mvc

import (
	"reflect"
	"sort"
)

// View is the composition root of a screen: it loads a layout, binds named
// widgets into its declared properties, and owns a Controller and a
// CommandManager. Embed ViewBase and override what differs:
//
//	type CounterView struct {
//		mvc.ViewBase
//		CountLabel *mvc.Widget
//	}
//
//	func (v *CounterView) LayoutFile() string { return "counter.yaml" }
//
//	func (v *CounterView) NewController() mvc.Bindable { return &Counter{} }
//
//	func (v *CounterView) DeclareProperties(p *mvc.PropertyIndex) {
//		mvc.Declare(p, v, "CountLabel", &v.CountLabel)
//	}
type View interface {
	PropertyDeclarer
	// AsView returns the embedded framework state.
	AsView() *ViewBase
	// LayoutFile returns the path of the view's layout. Every concrete view
	// must supply one.
	LayoutFile() string
	// NewController returns the uninitialized controller the view owns.
	NewController() Bindable
	// NewCommandManager returns the view's command manager.
	NewCommandManager() *CommandManager
}

var (
	viewBaseType = reflect.TypeFor[*ViewBase]()
	widgetType   = reflect.TypeFor[*Widget]()
)

// ViewBase carries the state every View needs and supplies defaults for the
// View customization points.
type ViewBase struct {
	this       View
	workspace  *Workspace
	root       *Widget
	controller Bindable
	commands   *CommandManager
	err        *ConfigError

	parent   View
	children []View
}

// AsView returns v.
func (v *ViewBase) AsView() *ViewBase {
	return v
}

// LayoutFile returns the empty path; concrete views override it.
func (v *ViewBase) LayoutFile() string {
	return ""
}

// NewController returns a base Controller.
func (v *ViewBase) NewController() Bindable {
	return &Controller{}
}

// NewCommandManager returns a base CommandManager.
func (v *ViewBase) NewCommandManager() *CommandManager {
	return NewCommandManager()
}

// DeclareProperties declares the framework's own read-only properties, which
// InitView removes before binding widgets.
func (v *ViewBase) DeclareProperties(p *PropertyIndex) {
	DeclareFunc[*Widget](p, viewBaseType, "LayoutRoot", v.Root, nil)
}

// InitView constructs v inside ws. If the layout root carries a Bindable
// script, that controller is used; otherwise NewController supplies one.
// Configuration errors (no layout file, no
// workspace, a layout that fails to load, a nil controller or command
// manager) are logged and stop construction; the view's Root then stays nil
// and Err reports the cause.
func InitView[T View](v T, ws *Workspace) T {
	if ws == nil {
		return initView(v, nil, nil)
	}
	return initView(v, ws, ws.Root())
}

// InitSubview constructs v with its layout attached under parent's root, in
// parent's workspace. Destroying parent destroys v as well.
func InitSubview[T View](v T, parent View) T {
	vb := v.AsView()
	if isNilInterface(parent) || parent.AsView().root == nil {
		vb.this = v
		vb.err = reportError("InitSubview", KindLayout, ErrNoParentRoot)
		return v
	}
	pv := parent.AsView()
	initView(v, pv.workspace, pv.root)
	if vb.err == nil {
		vb.parent = parent
		pv.children = append(pv.children, v)
	}
	return v
}

func initView[T View](v T, ws *Workspace, host *Widget) T {
	vb := v.AsView()
	vb.this = v

	path := v.LayoutFile()
	if path == "" {
		vb.err = reportError("InitView", KindLayout, ErrNoLayout)
		return v
	}
	if ws == nil {
		vb.err = reportError("InitView", KindWorkspace, ErrNoWorkspace)
		return v
	}
	root, err := ws.LoadLayout(path)
	if err != nil {
		vb.err = reportError("InitView", KindLayout, err)
		return v
	}
	vb.workspace = ws
	vb.root = root
	host.AddChild(root)

	bindWidgets(v, root)

	// A controller attached by the layout is adopted; otherwise the view
	// spawns one.
	b, ok := root.Script().(Bindable)
	if !ok || isNilInterface(b) {
		b = v.NewController()
		if isNilInterface(b) {
			vb.err = reportError("InitView", KindController, ErrNoController)
			return v
		}
	}
	c := attachController(b, root)
	if ws.sink != nil {
		c.SetNotificationSink(ws.sink)
	}
	c.view = v
	vb.controller = b

	cm := v.NewCommandManager()
	if cm == nil {
		vb.err = reportError("InitView", KindCommands, ErrNoCommands)
		return v
	}
	bindConfigKeys(cm, ws.cfg.Keys)
	c.commands = cm
	vb.commands = cm

	ws.addView(v)
	return v
}

// bindWidgets assigns the widget named after each declared *Widget property.
// A nested widget wins over the root; the root is used only when no
// descendant carries the name.
func bindWidgets(v View, root *Widget) {
	idx := IndexProperties(v)
	idx.RemoveType(viewBaseType)
	for _, name := range idx.Names() {
		if idx.Type(name) != widgetType {
			continue
		}
		w := root.Find(name)
		if w == nil && root.Name == name {
			w = root
		}
		if w == nil {
			logger.Warningf("view %T: no widget named %q", v, name)
			continue
		}
		idx.Set(name, w)
	}
}

// bindConfigKeys applies configured key bindings in key-name order.
func bindConfigKeys(cm *CommandManager, keys map[string]string) {
	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		if err := cm.BindKeyName(k, keys[k]); err != nil {
			logger.Warningf("%v", err)
		}
	}
}

func isNilInterface(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Root returns the layout root, or nil if construction failed.
func (v *ViewBase) Root() *Widget {
	return v.root
}

// Controller returns the view's controller, or nil.
func (v *ViewBase) Controller() Bindable {
	return v.controller
}

// Commands returns the view's command manager, or nil.
func (v *ViewBase) Commands() *CommandManager {
	return v.commands
}

// Workspace returns the hosting workspace, or nil.
func (v *ViewBase) Workspace() *Workspace {
	return v.workspace
}

// Parent returns the view v was nested under by InitSubview, or nil.
func (v *ViewBase) Parent() View {
	return v.parent
}

// Children returns the live subviews. The returned slice MUST NOT be mutated.
func (v *ViewBase) Children() []View {
	return v.children
}

// Err returns the configuration error that stopped construction, or nil.
func (v *ViewBase) Err() error {
	if v.err == nil {
		return nil
	}
	return v.err
}

// Destroy destroys the view's subviews, detaches the layout root from its
// parent and releases the controller and command manager.
func (v *ViewBase) Destroy() {
	for len(v.children) > 0 {
		v.children[len(v.children)-1].AsView().Destroy()
	}
	if v.parent != nil {
		pv := v.parent.AsView()
		for i, o := range pv.children {
			if o.AsView() == v {
				pv.children = append(pv.children[:i], pv.children[i+1:]...)
				break
			}
		}
		v.parent = nil
	}
	if v.root != nil {
		v.root.RemoveFromParent()
	}
	if v.controller != nil {
		v.controller.AsController().Destroy()
		v.controller = nil
	}
	v.commands = nil
	if v.workspace != nil {
		v.workspace.removeView(v.this)
		v.workspace = nil
	}
}
