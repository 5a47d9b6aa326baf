package mvc

import (
	"fmt"
	"sort"
	"strconv"
)

// ScriptSpec is the script block of a widget in a layout file.
type ScriptSpec struct {
	Type    string            `yaml:"type"`
	Binding string            `yaml:"binding"`
	Params  map[string]string `yaml:"params,omitempty"`
}

// Param returns the named parameter or def when unset.
func (s ScriptSpec) Param(name, def string) string {
	if v, ok := s.Params[name]; ok {
		return v
	}
	return def
}

// ScriptFactory creates the script object attached to w. The result need not
// be a ViewBinding; only ViewBindings take part in data binding.
type ScriptFactory func(w *Widget, spec ScriptSpec) (any, error)

// ScriptRegistry maps layout script type names to factories.
type ScriptRegistry struct {
	factories map[string]ScriptFactory
}

// NewScriptRegistry returns a registry holding the built-in bindings:
// TextBinding, VisibilityBinding, TweenBinding and ListBinding.
func NewScriptRegistry() *ScriptRegistry {
	r := &ScriptRegistry{factories: make(map[string]ScriptFactory)}
	r.Register("TextBinding", newTextBindingScript)
	r.Register("VisibilityBinding", newVisibilityBindingScript)
	r.Register("TweenBinding", newTweenBindingScript)
	r.Register("ListBinding", newListBindingScript)
	return r
}

// Register adds or replaces the factory for typeName.
func (r *ScriptRegistry) Register(typeName string, f ScriptFactory) {
	if f == nil {
		panic("mvc: nil script factory for " + typeName)
	}
	r.factories[typeName] = f
}

// Create builds the script described by spec for w.
func (r *ScriptRegistry) Create(w *Widget, spec ScriptSpec) (any, error) {
	f, ok := r.factories[spec.Type]
	if !ok {
		return nil, fmt.Errorf("unknown script type %q", spec.Type)
	}
	return f(w, spec)
}

// Types returns the registered type names, sorted.
func (r *ScriptRegistry) Types() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- Built-in factories ---

func requireBinding(spec ScriptSpec) error {
	if spec.Binding == "" {
		return fmt.Errorf("%s: missing binding name", spec.Type)
	}
	return nil
}

func newTextBindingScript(w *Widget, spec ScriptSpec) (any, error) {
	if err := requireBinding(spec); err != nil {
		return nil, err
	}
	return NewTextBinding(w, spec.Binding, spec.Param("format", "")), nil
}

func newVisibilityBindingScript(w *Widget, spec ScriptSpec) (any, error) {
	if err := requireBinding(spec); err != nil {
		return nil, err
	}
	invert, err := strconv.ParseBool(spec.Param("invert", "false"))
	if err != nil {
		return nil, fmt.Errorf("%s: invert: %w", spec.Type, err)
	}
	return NewVisibilityBinding(w, spec.Binding, invert), nil
}

func newTweenBindingScript(w *Widget, spec ScriptSpec) (any, error) {
	if err := requireBinding(spec); err != nil {
		return nil, err
	}
	field, err := parseTweenField(spec.Param("field", "alpha"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec.Type, err)
	}
	duration, err := strconv.ParseFloat(spec.Param("duration", "0"), 32)
	if err != nil {
		return nil, fmt.Errorf("%s: duration: %w", spec.Type, err)
	}
	fn, ok := EaseByName(spec.Param("ease", ""))
	if !ok {
		return nil, fmt.Errorf("%s: unknown ease %q", spec.Type, spec.Params["ease"])
	}
	return NewTweenBinding(w, spec.Binding, field, float32(duration), fn), nil
}

func newListBindingScript(w *Widget, spec ScriptSpec) (any, error) {
	if err := requireBinding(spec); err != nil {
		return nil, err
	}
	spacing, err := strconv.ParseFloat(spec.Param("spacing", "16"), 64)
	if err != nil {
		return nil, fmt.Errorf("%s: spacing: %w", spec.Type, err)
	}
	return NewListBinding(w, spec.Binding, spec.Param("format", ""), spacing), nil
}
