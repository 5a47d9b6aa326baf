package mvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const counterLayout = `
name: CounterView
children:
  - name: CountLabel
    type: text
    text: "0"
    x: 10
    y: 20
    script:
      type: TextBinding
      binding: Count
      params:
        format: "Count: %d"
  - name: Panel
    visible: false
    alpha: 0.5
    children:
      - name: Bar
        type: box
        width: 40
        height: 8
        color: "#ff000080"
        command: Increment
        script:
          type: TweenBinding
          binding: Count
          params:
            field: scalex
            duration: "0.5"
            ease: outquad
  - name: Items
    script:
      type: ListBinding
      binding: Items
`

func TestParseLayout(t *testing.T) {
	root, err := ParseLayout([]byte(counterLayout), nil)
	require.NoError(t, err)

	assert.Equal(t, "CounterView", root.Name)
	assert.Equal(t, WidgetContainer, root.Type)
	require.Equal(t, 3, root.NumChildren())

	label := root.Find("CountLabel")
	require.NotNil(t, label)
	assert.Equal(t, WidgetText, label.Type)
	assert.Equal(t, "0", label.Text)
	assert.Equal(t, 10.0, label.X)
	assert.Equal(t, 20.0, label.Y)
	tb, ok := label.Script().(*TextBinding)
	require.True(t, ok, "label script should be a TextBinding")
	assert.Equal(t, "Count", tb.BindingName())
	assert.Equal(t, "Count: %d", tb.Format)

	panel := root.Find("Panel")
	require.NotNil(t, panel)
	assert.False(t, panel.Visible)
	assert.Equal(t, 0.5, panel.Alpha)
	assert.Nil(t, panel.Script())

	bar := root.FindPath("Panel/Bar")
	require.NotNil(t, bar)
	assert.Equal(t, WidgetBox, bar.Type)
	assert.Equal(t, 40.0, bar.Width)
	assert.Equal(t, "Increment", bar.Command)
	assert.InDelta(t, 128.0/255, bar.Color.A, 1e-9)
	tw, ok := bar.Script().(*TweenBinding)
	require.True(t, ok, "bar script should be a TweenBinding")
	assert.Equal(t, TweenScaleX, tw.Field)
	assert.InDelta(t, 0.5, tw.Duration, 1e-6)

	lb, ok := root.Find("Items").Script().(*ListBinding)
	require.True(t, ok, "items script should be a ListBinding")
	assert.Equal(t, 16.0, lb.Spacing)
}

func TestParseLayoutDefaults(t *testing.T) {
	root, err := ParseLayout([]byte("name: Solo\n"), nil)
	require.NoError(t, err)
	assert.True(t, root.Visible)
	assert.Equal(t, 1.0, root.Alpha)
	assert.Equal(t, ColorWhite, root.Color)
	assert.Zero(t, root.NumChildren())
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"empty", "", "no root widget"},
		{"syntax", "name: [unclosed", "failed to parse layout"},
		{"widget type", "name: R\ntype: sprite\n", `R: unknown widget type "sprite"`},
		{"color", "name: R\nchildren:\n  - name: C\n    color: blue\n", "R/C: mvc: invalid color"},
		{"script type", "name: R\nscript: {type: Nope, binding: X}\n", `R: unknown script type "Nope"`},
		{"missing binding", "name: R\nscript: {type: TextBinding}\n", "missing binding name"},
		{"bad invert", "name: R\nscript: {type: VisibilityBinding, binding: X, params: {invert: maybe}}\n", "invert"},
		{"bad field", "name: R\nscript: {type: TweenBinding, binding: X, params: {field: rotation}}\n", "unknown tween field"},
		{"bad duration", "name: R\nscript: {type: TweenBinding, binding: X, params: {duration: soon}}\n", "duration"},
		{"bad ease", "name: R\nscript: {type: TweenBinding, binding: X, params: {ease: wobble}}\n", `unknown ease "wobble"`},
		{"bad spacing", "name: R\nscript: {type: ListBinding, binding: X, params: {spacing: wide}}\n", "spacing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := ParseLayout([]byte(tt.data), nil)
			require.Error(t, err)
			assert.Nil(t, root)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseLayoutEmptyIsSentinel(t *testing.T) {
	_, err := ParseLayout([]byte("# nothing here\n"), nil)
	assert.ErrorIs(t, err, ErrEmptyLayout)
}

// --- Script registry ---

type customScript struct {
	widget *Widget
	label  string
}

func TestScriptRegistryCustom(t *testing.T) {
	scripts := NewScriptRegistry()
	scripts.Register("Custom", func(w *Widget, spec ScriptSpec) (any, error) {
		return &customScript{widget: w, label: spec.Param("label", "none")}, nil
	})
	assert.Contains(t, scripts.Types(), "Custom")

	root, err := ParseLayout([]byte("name: R\nscript: {type: Custom, params: {label: hi}}\n"), scripts)
	require.NoError(t, err)
	cs, ok := root.Script().(*customScript)
	require.True(t, ok)
	assert.Equal(t, "hi", cs.label)
	assert.Same(t, root, cs.widget)
}

func TestScriptRegistryBuiltins(t *testing.T) {
	assert.Equal(t,
		[]string{"ListBinding", "TextBinding", "TweenBinding", "VisibilityBinding"},
		NewScriptRegistry().Types())
}

func TestScriptRegistryNilFactoryPanics(t *testing.T) {
	assert.Panics(t, func() { NewScriptRegistry().Register("X", nil) })
}

func TestScriptSpecParam(t *testing.T) {
	spec := ScriptSpec{Params: map[string]string{"a": "1"}}
	assert.Equal(t, "1", spec.Param("a", "0"))
	assert.Equal(t, "0", spec.Param("b", "0"))
	assert.Equal(t, "d", ScriptSpec{}.Param("x", "d"))
}
