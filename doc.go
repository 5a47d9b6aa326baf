// Package mvc is a model-view-controller data-binding layer for retained-mode
// game UI built on [Ebitengine].
//
// A controller declares bindable properties; scripts attached to widgets
// (ViewBindings) declare which property they show. When the controller
// reports a change, every widget bound to that property is refreshed, then
// the controller's own hook runs.
//
// # Quick start
//
// Describe the screen in a layout file:
//
//	name: CounterView
//	children:
//	  - name: CountLabel
//	    type: text
//	    script: {type: TextBinding, binding: Count, params: {format: "Count: %d"}}
//	  - name: IncrementButton
//	    type: box
//	    width: 80
//	    height: 24
//	    command: Increment
//
// Declare a controller and a view:
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
//	type CounterView struct{ mvc.ViewBase }
//
//	func (v *CounterView) LayoutFile() string          { return "counter.yaml" }
//	func (v *CounterView) NewController() mvc.Bindable { return &Counter{} }
//
// Then build the view inside a workspace and run it:
//
//	ws := mvc.NewWorkspace(mvc.DefaultConfig())
//	view := mvc.InitView(&CounterView{}, ws)
//	if view.Root() == nil {
//		log.Fatal(view.Err())
//	}
//	log.Fatal(mvc.Run(ws))
//
// # Binding
//
// Properties are registered explicitly with [Declare] and [DeclareFunc];
// there is no runtime field discovery. When a view is created its
// controller walks the layout tree once, depth-first, and registers every
// [ViewBinding] it finds under the binding's name. [Controller.NotifyPropertyChanged]
// and [Controller.NotifyCollectionChanged] then fan out to those bindings in
// discovery order before calling the PropertyChanged or CollectionChanged
// hook.
//
// Built-in bindings are [TextBinding], [VisibilityBinding], [TweenBinding]
// (animated with [gween]) and [ListBinding]. [List] reports its own
// mutations as collection changes.
//
// # Errors
//
// Configuration problems while building a view (missing layout, no
// workspace, invalid layout, nil controller) are logged at error severity
// and leave the view's Root nil; [ViewBase.Err] returns the cause. Unknown
// property or binding names are not errors.
//
// The ECS adapter in mvc/ecs forwards notifications into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package mvc
