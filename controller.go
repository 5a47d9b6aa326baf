package mvc

import "reflect"

// Bindable is the capability set of a controller. *Controller implements it
// with no-op hooks; a type embedding Controller overrides the hooks and
// DeclareProperties by defining its own methods.
type Bindable interface {
	PropertyDeclarer
	// AsController returns the embedded framework state.
	AsController() *Controller
	// PropertyChanged runs after every view bound to name has been refreshed.
	PropertyChanged(name string)
	// CollectionChanged runs after every view bound to name has applied args.
	CollectionChanged(name string, args CollectionChangedArgs)
}

var controllerType = reflect.TypeFor[*Controller]()

// Controller holds bindable properties and the registries that map
// binding-names to views. Embed it in a struct, declare the struct's
// properties in DeclareProperties, and call NotifyPropertyChanged from
// setters:
//
//	type Counter struct {
//		mvc.Controller
//		Count int
//	}
//
//	func (c *Counter) DeclareProperties(p *mvc.PropertyIndex) {
//		mvc.Declare(p, c, "Count", &c.Count)
//	}
//
//	func (c *Counter) Increment() {
//		c.Count++
//		c.NotifyPropertyChanged("Count")
//	}
//
// A Controller must be initialized with InitController (InitView does this)
// and must not be copied afterwards.
type Controller struct {
	this Bindable

	root     *Widget
	view     View
	commands *CommandManager
	sink     NotificationSink

	properties *PropertyIndex
	registry   *BindingRegistry

	attached  bool
	destroyed bool
}

// NewController returns an initialized base Controller with no properties.
func NewController() *Controller {
	return InitController(&Controller{})
}

// InitController prepares the Controller embedded in b: it records b as the
// receiver of hooks and indexes b's declared properties, minus those the
// Controller base declares for itself.
func InitController[T Bindable](b T) T {
	c := b.AsController()
	c.this = b
	c.registry = NewBindingRegistry()
	c.properties = IndexProperties(b)
	c.properties.RemoveType(controllerType)
	return b
}

// ensureInit initializes a Controller that was attached without InitController.
func (c *Controller) ensureInit() {
	if c.registry == nil {
		InitController(c.self())
	}
}

func (c *Controller) self() Bindable {
	if c.this == nil {
		return c
	}
	return c.this
}

// AsController returns c.
func (c *Controller) AsController() *Controller {
	return c
}

// DeclareProperties declares the framework's own read-only properties.
// Embedding types may call it; the entries are removed from the public
// surface by InitController.
func (c *Controller) DeclareProperties(p *PropertyIndex) {
	DeclareFunc[*Widget](p, controllerType, "Root", c.Root, nil)
}

// PropertyChanged is the default no-op hook.
func (c *Controller) PropertyChanged(name string) {}

// CollectionChanged is the default no-op hook.
func (c *Controller) CollectionChanged(name string, args CollectionChangedArgs) {}

// --- Attachment ---

// OnWidgetScriptInit attaches the Controller to a layout root: it records the
// root, becomes the root's event handler, and registers every ViewBinding in
// the root's subtree. It runs once; later calls are ignored.
func (c *Controller) OnWidgetScriptInit(root *Widget) {
	if c.destroyed {
		return
	}
	if root == nil {
		reportError("OnWidgetScriptInit", KindController, ErrNoLayout)
		return
	}
	if c.attached {
		logger.Warningf("controller %T already attached to %q", c.self(), c.root.Name)
		return
	}
	c.ensureInit()
	c.attached = true
	c.root = root
	if h, ok := c.self().(EventHandler); ok {
		root.SetHandler(h)
	}
	count := c.loadDataBindings(root, 0)
	logger.Infof("controller %T bound %d view(s) under %q", c.self(), count, root.Name)
	if globalDebug {
		c.debugLogBindings()
	}
}

// attachController initializes b if nothing has yet and attaches it to
// root unless it is already attached somewhere.
func attachController(b Bindable, root *Widget) *Controller {
	c := b.AsController()
	if c.registry == nil {
		InitController(b)
	}
	if !c.attached {
		c.OnWidgetScriptInit(root)
	}
	return c
}

// --- Notification protocol ---

// NotifyPropertyChanged refreshes every view bound to name, in the order
// they were discovered, then calls the PropertyChanged hook. A name with no
// bound views only runs the hook.
//
// Do not use it for collection fields: it makes views re-read the whole
// value. Use NotifyCollectionChanged instead.
func (c *Controller) NotifyPropertyChanged(name string) {
	if c.destroyed {
		return
	}
	c.ensureInit()
	logger.Debugf("notify %q", name)
	for _, b := range c.registry.Get(name) {
		b.UpdateView()
	}
	c.self().PropertyChanged(name)
	if c.sink != nil {
		c.sink.EmitNotification(Notification{Kind: NotifyProperty, Name: name})
	}
}

// NotifyCollectionChanged passes args to every view bound to name, then calls
// the CollectionChanged hook.
func (c *Controller) NotifyCollectionChanged(name string, args CollectionChangedArgs) {
	if c.destroyed {
		return
	}
	c.ensureInit()
	logger.Debugf("notify %q: %s", name, args.Action)
	for _, b := range c.registry.Get(name) {
		b.UpdateCollection(args)
	}
	c.self().CollectionChanged(name, args)
	if c.sink != nil {
		c.sink.EmitNotification(Notification{Kind: NotifyCollection, Name: name, Args: args})
	}
}

// SetValue assigns v to the property name and notifies its views. It reports
// false, without notifying, if the property is unknown, read-only or of
// another type.
func (c *Controller) SetValue(name string, v any) bool {
	if c.destroyed {
		return false
	}
	c.ensureInit()
	if !c.properties.Set(name, v) {
		return false
	}
	c.NotifyPropertyChanged(name)
	return true
}

// Value returns the current value of the property name.
func (c *Controller) Value(name string) (any, bool) {
	if c.properties == nil {
		return nil, false
	}
	return c.properties.Get(name)
}

// --- Accessors ---

// DataBindings returns the binding registry.
func (c *Controller) DataBindings() *BindingRegistry {
	c.ensureInit()
	return c.registry
}

// ViewBindings returns every registered binding in discovery order.
func (c *Controller) ViewBindings() []ViewBinding {
	c.ensureInit()
	return c.registry.All()
}

// PropertyType returns the declared type of name, or nil when name is not a
// bindable property.
func (c *Controller) PropertyType(name string) reflect.Type {
	if c.properties == nil {
		return nil
	}
	return c.properties.Type(name)
}

// Properties returns the property index.
func (c *Controller) Properties() *PropertyIndex {
	c.ensureInit()
	return c.properties
}

// Root returns the layout root the Controller is attached to, or nil.
func (c *Controller) Root() *Widget {
	return c.root
}

// View returns the View that spawned the Controller, or nil.
func (c *Controller) View() View {
	return c.view
}

// Commands returns the command manager of the owning view, or nil.
func (c *Controller) Commands() *CommandManager {
	return c.commands
}

// SetNotificationSink forwards every notification to sink after views and
// hooks have run. Pass nil to stop forwarding.
func (c *Controller) SetNotificationSink(sink NotificationSink) {
	c.sink = sink
}

// HandleClick executes the clicked widget's Command, if any.
func (c *Controller) HandleClick(w *Widget) bool {
	if w.Command == "" || c.commands == nil {
		return false
	}
	return c.commands.Execute(w.Command)
}

// Advance steps every animated binding by dt seconds.
func (c *Controller) Advance(dt float32) {
	if c.destroyed || c.registry == nil {
		return
	}
	for _, b := range c.registry.All() {
		if a, ok := b.(Animator); ok {
			a.Advance(dt)
		}
	}
}

// --- Lifecycle ---

// Destroy releases the registries. Bindings see a nil Controller afterwards
// and notifications are ignored.
func (c *Controller) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	if c.root != nil {
		if h, ok := c.self().(EventHandler); ok && c.root.Handler() == h {
			c.root.SetHandler(nil)
		}
	}
	if c.registry != nil {
		c.registry.reset()
	}
	c.properties = nil
	c.root = nil
	c.view = nil
	c.commands = nil
	c.sink = nil
}

// IsDestroyed reports whether Destroy has been called.
func (c *Controller) IsDestroyed() bool {
	return c.destroyed
}
