package mvc

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// WidgetSpec is one widget in a layout file. A layout file holds a single
// root WidgetSpec:
//
//	name: CounterView
//	children:
//	  - name: CountLabel
//	    type: text
//	    text: "0"
//	    script:
//	      type: TextBinding
//	      binding: Count
//	      params:
//	        format: "Count: %d"
type WidgetSpec struct {
	Name     string       `yaml:"name"`
	Type     string       `yaml:"type,omitempty"`
	Text     string       `yaml:"text,omitempty"`
	X        float64      `yaml:"x,omitempty"`
	Y        float64      `yaml:"y,omitempty"`
	Width    float64      `yaml:"width,omitempty"`
	Height   float64      `yaml:"height,omitempty"`
	Alpha    *float64     `yaml:"alpha,omitempty"`
	Visible  *bool        `yaml:"visible,omitempty"`
	Color    string       `yaml:"color,omitempty"`
	Command  string       `yaml:"command,omitempty"`
	Script   *ScriptSpec  `yaml:"script,omitempty"`
	Children []WidgetSpec `yaml:"children,omitempty"`
}

// ErrEmptyLayout is returned for a layout without a root widget.
var ErrEmptyLayout = errors.New("layout has no root widget")

// ParseLayout builds the widget tree described by data, attaching scripts
// created by scripts.
func ParseLayout(data []byte, scripts *ScriptRegistry) (*Widget, error) {
	var spec WidgetSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	if spec.Name == "" && spec.Type == "" && len(spec.Children) == 0 {
		return nil, ErrEmptyLayout
	}
	return BuildLayout(spec, scripts)
}

// BuildLayout builds the widget tree described by spec. A script that is a
// Bindable controller is attached to its widget once the widget's subtree
// is complete.
func BuildLayout(spec WidgetSpec, scripts *ScriptRegistry) (*Widget, error) {
	if scripts == nil {
		scripts = NewScriptRegistry()
	}
	return buildWidget(spec, scripts, spec.Name)
}

func buildWidget(spec WidgetSpec, scripts *ScriptRegistry, path string) (*Widget, error) {
	typ, ok := parseWidgetType(spec.Type)
	if !ok {
		return nil, fmt.Errorf("%s: unknown widget type %q", path, spec.Type)
	}
	w := NewWidget(spec.Name, typ)
	w.Text = spec.Text
	w.X, w.Y = spec.X, spec.Y
	w.Width, w.Height = spec.Width, spec.Height
	w.Command = spec.Command
	if spec.Alpha != nil {
		w.Alpha = *spec.Alpha
	}
	if spec.Visible != nil {
		w.Visible = *spec.Visible
	}
	if spec.Color != "" {
		c, err := ParseColor(spec.Color)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		w.Color = c
	}
	for _, cs := range spec.Children {
		child, err := buildWidget(cs, scripts, path+"/"+cs.Name)
		if err != nil {
			return nil, err
		}
		w.AddChild(child)
	}
	if spec.Script != nil {
		script, err := scripts.Create(w, *spec.Script)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		w.SetScript(script)
		if b, ok := script.(Bindable); ok && !isNilInterface(b) {
			attachController(b, w)
		}
	}
	return w, nil
}
